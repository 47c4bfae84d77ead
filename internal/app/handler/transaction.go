package handler

import (
	"context"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"ledger/internal/app/logger"
	"ledger/internal/app/model"
	"net/http"
)

type TransactionHandler struct {
	ledger Ledger
}

func NewTransactionHandler(ledger Ledger) *TransactionHandler {
	return &TransactionHandler{
		ledger: ledger,
	}
}

func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := logger.Get(ctx, "Handler.Transaction.Create")
	l.Debug().Send()

	in := &struct {
		Buyer     int64            `json:"buyer" validate:"required,gt=0"`
		Seller    int64            `json:"seller" validate:"required,gt=0"`
		ItemUID   uuid.UUID        `json:"item_uid" validate:"required"`
		ItemPrice *decimal.Decimal `json:"item_price" validate:"required"`
	}{}

	if err := readBody(r, in); err != nil {
		l.Debug().Err(err).Msg("Body read failed")
		WriteError(w, err, http.StatusBadRequest)
		return
	}

	if !validateData(w, in) {
		return
	}

	m, err := h.ledger.CreateTransaction(ctx, in.Buyer, in.Seller, in.ItemUID, *in.ItemPrice)
	if err != nil {
		writeLedgerError(w, l, err)
		return
	}

	WriteResponse(w, m, http.StatusCreated)
}

func (h *TransactionHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := logger.Get(ctx, "Handler.Transaction.Get")

	id, err := urlID(r, "id")
	if err != nil {
		writeLedgerError(w, l, err)
		return
	}

	m, err := h.ledger.GetTransaction(ctx, id)
	if err != nil {
		writeLedgerError(w, l, err)
		return
	}

	WriteResponse(w, m, http.StatusOK)
}

func (h *TransactionHandler) ListHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := logger.Get(ctx, "Handler.Transaction.ListHistory")

	id, err := urlID(r, "id")
	if err != nil {
		writeLedgerError(w, l, err)
		return
	}

	mm, err := h.ledger.ListTransactionHistory(ctx, id)
	if err != nil {
		writeLedgerError(w, l, err)
		return
	}

	WriteResponse(w, mm, http.StatusOK)
}

func (h *TransactionHandler) Freeze(w http.ResponseWriter, r *http.Request) {
	h.advance(w, r, "Handler.Transaction.Freeze", h.ledger.FreezeTransaction)
}

func (h *TransactionHandler) Accept(w http.ResponseWriter, r *http.Request) {
	h.advance(w, r, "Handler.Transaction.Accept", h.ledger.AcceptTransaction)
}

func (h *TransactionHandler) advance(
	w http.ResponseWriter,
	r *http.Request,
	component string,
	fn func(ctx context.Context, id int64) (*model.Transaction, error),
) {
	ctx := r.Context()
	l := logger.Get(ctx, component)
	l.Debug().Send()

	id, err := urlID(r, "id")
	if err != nil {
		writeLedgerError(w, l, err)
		return
	}

	m, err := fn(ctx, id)
	if err != nil {
		writeLedgerError(w, l, err)
		return
	}

	WriteResponse(w, m, http.StatusOK)
}
