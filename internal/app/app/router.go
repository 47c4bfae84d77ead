package app

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"ledger/internal/app/handler"
	"ledger/internal/app/logger"
	mw "ledger/internal/app/middleware"
	"net/http"
)

func (a *App) Router() http.Handler {
	return newRouter(a.logger, a.ledger)
}

func newRouter(l logger.Logger, ledger handler.Ledger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	ah := handler.NewAccountHandler(ledger)
	th := handler.NewTransferHandler(ledger)
	txh := handler.NewTransactionHandler(ledger)

	r.Route("/accounts", func(r chi.Router) {
		r.Post("/", ah.Create)
		r.Get("/by-user/{uid}", ah.GetByUser)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", ah.Get)
			r.Delete("/", ah.Delete)
			r.Get("/balance-changes", ah.ListBalanceChanges)
			r.Get("/transfers", ah.ListTransfers)
			r.Post("/deposit", ah.Deposit)
			r.Post("/withdraw", ah.Withdraw)
		})
	})

	r.Post("/transfers", th.Create)

	r.Route("/transactions", func(r chi.Router) {
		r.Post("/", txh.Create)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", txh.Get)
			r.Get("/history", txh.ListHistory)
			r.Post("/freeze", txh.Freeze)
			r.Post("/accept", txh.Accept)
		})
	})

	return mw.Log(l).Then(r)
}
