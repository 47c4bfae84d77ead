package handler

import (
	"context"
	"fmt"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"ledger/internal/app/apperr"
	"ledger/internal/app/logger"
	"ledger/internal/app/model"
	"net/http"
)

type AccountHandler struct {
	ledger Ledger
}

func NewAccountHandler(ledger Ledger) *AccountHandler {
	return &AccountHandler{
		ledger: ledger,
	}
}

func (h *AccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := logger.Get(ctx, "Handler.Account.Create")
	l.Debug().Send()

	in := struct {
		UserUID uuid.UUID `json:"user_uid" validate:"required"`
	}{}

	if err := readBody(r, &in); err != nil {
		l.Debug().Err(err).Msg("Body read failed")
		WriteError(w, err, http.StatusBadRequest)
		return
	}

	if !validateData(w, in) {
		return
	}

	m, err := h.ledger.CreateAccount(ctx, in.UserUID)
	if err != nil {
		writeLedgerError(w, l, err)
		return
	}

	WriteResponse(w, m, http.StatusCreated)
}

func (h *AccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := logger.Get(ctx, "Handler.Account.Get")

	id, err := urlID(r, "id")
	if err != nil {
		writeLedgerError(w, l, err)
		return
	}

	m, err := h.ledger.GetAccount(ctx, id)
	if err != nil {
		writeLedgerError(w, l, err)
		return
	}

	WriteResponse(w, m, http.StatusOK)
}

func (h *AccountHandler) GetByUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := logger.Get(ctx, "Handler.Account.GetByUser")

	uid, err := uuid.Parse(chi.URLParam(r, "uid"))
	if err != nil {
		writeLedgerError(w, l, fmt.Errorf("%w: uid should be a valid uuid", apperr.ErrInvalidInput))
		return
	}

	m, err := h.ledger.GetAccountByUser(ctx, uid)
	if err != nil {
		writeLedgerError(w, l, err)
		return
	}

	WriteResponse(w, m, http.StatusOK)
}

func (h *AccountHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := logger.Get(ctx, "Handler.Account.Delete")

	id, err := urlID(r, "id")
	if err != nil {
		writeLedgerError(w, l, err)
		return
	}

	if err := h.ledger.DeleteAccount(ctx, id); err != nil {
		writeLedgerError(w, l, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *AccountHandler) ListBalanceChanges(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := logger.Get(ctx, "Handler.Account.ListBalanceChanges")

	id, err := urlID(r, "id")
	if err != nil {
		writeLedgerError(w, l, err)
		return
	}

	mm, err := h.ledger.ListBalanceChanges(ctx, id)
	if err != nil {
		writeLedgerError(w, l, err)
		return
	}

	WriteResponse(w, mm, http.StatusOK)
}

func (h *AccountHandler) ListTransfers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := logger.Get(ctx, "Handler.Account.ListTransfers")

	id, err := urlID(r, "id")
	if err != nil {
		writeLedgerError(w, l, err)
		return
	}

	mm, err := h.ledger.ListTransfers(ctx, id)
	if err != nil {
		writeLedgerError(w, l, err)
		return
	}

	WriteResponse(w, mm, http.StatusOK)
}

type amountRequest struct {
	Amount *decimal.Decimal `json:"amount" validate:"required"`
}

func (h *AccountHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, "Handler.Account.Deposit", h.ledger.Deposit)
}

func (h *AccountHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, "Handler.Account.Withdraw", h.ledger.Withdraw)
}

type mutateFunc func(ctx context.Context, accountID int64, amount decimal.Decimal) (*model.Account, error)

func (h *AccountHandler) mutate(w http.ResponseWriter, r *http.Request, component string, fn mutateFunc) {
	ctx := r.Context()
	l := logger.Get(ctx, component)
	l.Debug().Send()

	id, err := urlID(r, "id")
	if err != nil {
		writeLedgerError(w, l, err)
		return
	}

	in := &amountRequest{}
	if err := readBody(r, in); err != nil {
		l.Debug().Err(err).Msg("Body read failed")
		WriteError(w, err, http.StatusBadRequest)
		return
	}

	if !validateData(w, in) {
		return
	}

	m, err := fn(ctx, id, *in.Amount)
	if err != nil {
		writeLedgerError(w, l, err)
		return
	}

	WriteResponse(w, m, http.StatusOK)
}
