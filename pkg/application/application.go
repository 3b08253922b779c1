package application

import (
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/openjustice/courtadmin/pkg/eventbus"
)

// Controller is anything that can mount itself on the router.
type Controller interface {
	Key() string
	Register(r *mux.Router)
}

type Application interface {
	Controllers() []Controller
	Middleware() []mux.MiddlewareFunc
	RegisterControllers(controllers ...Controller)
	RegisterMiddleware(middleware ...mux.MiddlewareFunc)
	EventPublisher() eventbus.EventBus
	Logger() *logrus.Logger
}

func New(logger *logrus.Logger, publisher eventbus.EventBus) Application {
	return &application{
		logger:    logger,
		publisher: publisher,
	}
}

type application struct {
	logger      *logrus.Logger
	publisher   eventbus.EventBus
	controllers []Controller
	middleware  []mux.MiddlewareFunc
}

func (a *application) Controllers() []Controller {
	return a.controllers
}

func (a *application) Middleware() []mux.MiddlewareFunc {
	return a.middleware
}

func (a *application) RegisterControllers(controllers ...Controller) {
	a.controllers = append(a.controllers, controllers...)
}

func (a *application) RegisterMiddleware(middleware ...mux.MiddlewareFunc) {
	a.middleware = append(a.middleware, middleware...)
}

func (a *application) EventPublisher() eventbus.EventBus {
	return a.publisher
}

func (a *application) Logger() *logrus.Logger {
	return a.logger
}
