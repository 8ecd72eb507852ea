// Package httpapi exposes the ledger store and forecast engine over HTTP.
// Mutations persist a snapshot after they commit; persistence failure is logged
// but never fails the request.
package httpapi

import (
	"context"
	"net/http"

	chi "github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"log/slog"

	"github.com/haushalt/ledger/internal/date"
	"github.com/haushalt/ledger/internal/storage"
	"github.com/haushalt/ledger/internal/store"
)

// Server wires handlers and middleware using Chi.
type Server struct {
	st    *store.Store
	saver storage.SnapshotStore
	log   *slog.Logger
	rt    *chi.Mux

	// today is injectable so tests can pin the forecast clock.
	today func() date.Date
}

// New constructs the HTTP server with routes and middleware. saver may be nil;
// the API then runs without persistence.
func New(st *store.Store, saver storage.SnapshotStore, logger *slog.Logger) *Server {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(requestLogger(logger))
	r.Use(recoverer(logger))
	r.Use(metricsMiddleware)

	s := &Server{st: st, saver: saver, log: logger, rt: r, today: date.Today}
	s.routes()
	return s
}

// Handler exposes the configured http.Handler.
func (s *Server) Handler() http.Handler { return s.rt }

func (s *Server) routes() {
	s.rt.Get("/healthz", s.healthz)
	s.rt.Get("/readyz", s.readyz)
	s.rt.Method(http.MethodGet, "/metrics", metricsHandler())

	s.rt.Route("/v1", func(r chi.Router) {
		r.Post("/persons", s.postPerson)
		r.Get("/persons", s.listPersons)
		r.Get("/persons/{id}", s.getPerson)
		r.Put("/persons/{id}", s.putPerson)
		r.Delete("/persons/{id}", s.deletePerson)

		r.Post("/accounts", s.postAccount)
		r.Get("/accounts", s.listAccounts)
		r.Get("/accounts/{id}", s.getAccount)
		r.Put("/accounts/{id}", s.putAccount)
		r.Delete("/accounts/{id}", s.deleteAccount)

		r.Post("/categories", s.postCategory)
		r.Get("/categories", s.listCategories)
		r.Get("/categories/{id}", s.getCategory)
		r.Put("/categories/{id}", s.putCategory)
		r.Delete("/categories/{id}", s.deleteCategory)

		r.Post("/transactions", s.postTransaction)
		r.Get("/transactions", s.listTransactions)
		r.Get("/transactions/{id}", s.getTransaction)
		r.Put("/transactions/{id}", s.putTransaction)
		r.Delete("/transactions/{id}", s.deleteTransaction)

		r.Post("/recurring-entries", s.postRecurringEntry)
		r.Get("/recurring-entries", s.listRecurringEntries)
		r.Get("/recurring-entries/{id}", s.getRecurringEntry)
		r.Put("/recurring-entries/{id}", s.putRecurringEntry)
		r.Delete("/recurring-entries/{id}", s.deleteRecurringEntry)

		r.Post("/amount-schedules", s.postAmountSchedule)
		r.Get("/amount-schedules", s.listAmountSchedules)
		r.Get("/amount-schedules/{id}", s.getAmountSchedule)
		r.Put("/amount-schedules/{id}", s.putAmountSchedule)
		r.Delete("/amount-schedules/{id}", s.deleteAmountSchedule)

		r.Post("/subscriptions", s.postSubscription)
		r.Get("/subscriptions", s.listSubscriptions)
		r.Get("/subscriptions/{id}", s.getSubscription)
		r.Put("/subscriptions/{id}", s.putSubscription)
		r.Delete("/subscriptions/{id}", s.deleteSubscription)

		r.Post("/debts", s.postDebt)
		r.Get("/debts", s.listDebts)
		r.Get("/debts/{id}", s.getDebt)
		r.Put("/debts/{id}", s.putDebt)
		r.Delete("/debts/{id}", s.deleteDebt)

		r.Post("/investments", s.postInvestment)
		r.Get("/investments", s.listInvestments)
		r.Get("/investments/summary", s.investmentsSummary)
		r.Get("/investments/{id}", s.getInvestment)
		r.Put("/investments/{id}", s.putInvestment)
		r.Delete("/investments/{id}", s.deleteInvestment)

		r.Get("/forecast", s.getForecast)
		r.Get("/payments/upcoming", s.upcomingPayments)
		r.Get("/summary", s.getSummary)

		r.Get("/export", s.exportSnapshot)
		r.Post("/import", s.importSnapshot)
	})
}

// pathID parses the {id} route parameter.
func pathID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "id"))
}

// persist writes the current snapshot through the configured store. Failures
// are logged and counted but do not fail the originating request.
func (s *Server) persist(ctx context.Context) {
	if s.saver == nil {
		return
	}
	if err := s.saver.Save(ctx, s.st.ExportSnapshot()); err != nil {
		snapshotSavesTotal.WithLabelValues("error").Inc()
		s.log.Error("snapshot save failed", "err", err)
		return
	}
	snapshotSavesTotal.WithLabelValues("ok").Inc()
}
