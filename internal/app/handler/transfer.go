package handler

import (
	"github.com/shopspring/decimal"
	"ledger/internal/app/logger"
	"net/http"
)

type TransferHandler struct {
	ledger Ledger
}

func NewTransferHandler(ledger Ledger) *TransferHandler {
	return &TransferHandler{
		ledger: ledger,
	}
}

func (h *TransferHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := logger.Get(ctx, "Handler.Transfer.Create")
	l.Debug().Send()

	in := &struct {
		From   int64            `json:"from" validate:"required,gt=0"`
		To     int64            `json:"to" validate:"required,gt=0"`
		Amount *decimal.Decimal `json:"amount" validate:"required"`
	}{}

	if err := readBody(r, in); err != nil {
		l.Debug().Err(err).Msg("Body read failed")
		WriteError(w, err, http.StatusBadRequest)
		return
	}

	if !validateData(w, in) {
		return
	}

	m, err := h.ledger.Transfer(ctx, in.From, in.To, *in.Amount)
	if err != nil {
		writeLedgerError(w, l, err)
		return
	}

	WriteResponse(w, m, http.StatusCreated)
}
