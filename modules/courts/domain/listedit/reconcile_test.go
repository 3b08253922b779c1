package listedit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openjustice/courtadmin/modules/courts/domain/listedit"
	"github.com/openjustice/courtadmin/modules/courts/domain/records"
)

func hour(t, h string) records.OpeningHour {
	return records.OpeningHour{Type: t, Hours: h}
}

func TestReconcile_DropsBlanksAndAppendsTemplate(t *testing.T) {
	posted := []records.OpeningHour{
		hour("Counter open", "9am to 5pm"),
		{},
		hour("Telephone enquiries", "8am to 6pm"),
		{Hours: "   "},
		records.BlankOpeningHour(),
	}

	got := listedit.Reconcile(posted, records.BlankOpeningHour)

	require.Len(t, got, 3)
	assert.Equal(t, "Counter open", got[0].Type)
	assert.Equal(t, "Telephone enquiries", got[1].Type)
	assert.True(t, got[2].Blank())
	assert.True(t, got[2].IsNew)
	assert.Equal(t, 2, listedit.RealCount(got))
}

func TestReconcile_EmptyListKeepsSingleTemplate(t *testing.T) {
	got := listedit.Reconcile(nil, records.BlankOpeningHour)

	require.Len(t, got, 1)
	assert.True(t, got[0].Blank())
	assert.True(t, got[0].IsNew)
}

func TestReconcile_Idempotent(t *testing.T) {
	posted := []records.OpeningHour{
		hour("Counter open", "9am to 5pm"),
		{},
		hour("Bailiffs", "9am to 1pm"),
	}

	once := listedit.Reconcile(posted, records.BlankOpeningHour)
	twice := listedit.Reconcile(once, records.BlankOpeningHour)

	assert.Equal(t, once, twice)
}

func TestReconcile_ExactlyOneBlankRow(t *testing.T) {
	posted := []records.OpeningHour{
		{}, {}, {},
		hour("Counter open", "9am to 5pm"),
		{}, {},
	}

	got := listedit.Reconcile(posted, records.BlankOpeningHour)

	blanks := 0
	for _, row := range got {
		if row.Blank() {
			blanks++
		}
	}
	assert.Equal(t, 1, blanks)
	assert.True(t, got[len(got)-1].Blank())
}

func TestMoveUp(t *testing.T) {
	rows := []records.OpeningHour{
		hour("A", "1"),
		hour("B", "2"),
		records.BlankOpeningHour(),
	}

	listedit.MoveUp(rows, 1)
	assert.Equal(t, "B", rows[0].Type)
	assert.Equal(t, "A", rows[1].Type)

	// First row has nowhere to go.
	listedit.MoveUp(rows, 0)
	assert.Equal(t, "B", rows[0].Type)

	listedit.MoveUp(rows, -1)
	listedit.MoveUp(rows, 5)
	assert.Equal(t, "B", rows[0].Type)
	assert.Equal(t, "A", rows[1].Type)
}

func TestRealIndex(t *testing.T) {
	posted := []records.OpeningHour{
		{},
		hour("A", "1"),
		{},
		hour("B", "2"),
	}

	assert.Equal(t, 0, listedit.RealIndex(posted, 1))
	assert.Equal(t, 1, listedit.RealIndex(posted, 3))

	// Blank or out-of-range targets resolve to no row at all.
	assert.Equal(t, -1, listedit.RealIndex(posted, 0))
	assert.Equal(t, -1, listedit.RealIndex(posted, 2))
	assert.Equal(t, -1, listedit.RealIndex(posted, -1))
	assert.Equal(t, -1, listedit.RealIndex(posted, 4))
}

func TestMoveDown_StopsAtTemplateRow(t *testing.T) {
	rows := []records.OpeningHour{
		hour("A", "1"),
		hour("B", "2"),
		records.BlankOpeningHour(),
	}

	listedit.MoveDown(rows, 0)
	assert.Equal(t, "B", rows[0].Type)
	assert.Equal(t, "A", rows[1].Type)

	// The last real row cannot swap with the template row.
	listedit.MoveDown(rows, 1)
	assert.Equal(t, "A", rows[1].Type)
	assert.True(t, rows[2].Blank())
}
