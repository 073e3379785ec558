package mvaulttest

import (
	"github.com/mvault/mvault"
)

// Handler implements mvault.Handler and returns configured results. It
// counts the calls it receives.
type Handler struct {
	CheckResult mvault.CheckResult
	CheckErr    error

	DeliverResult mvault.DeliverResult
	DeliverErr    error

	checkCall   int
	deliverCall int
}

var _ mvault.Handler = (*Handler)(nil)

func (h *Handler) Check(ctx mvault.Context, db mvault.KVStore, tx mvault.Tx) (*mvault.CheckResult, error) {
	h.checkCall++
	if h.CheckErr != nil {
		return nil, h.CheckErr
	}
	res := h.CheckResult
	return &res, nil
}

func (h *Handler) Deliver(ctx mvault.Context, db mvault.KVStore, tx mvault.Tx) (*mvault.DeliverResult, error) {
	h.deliverCall++
	if h.DeliverErr != nil {
		return nil, h.DeliverErr
	}
	res := h.DeliverResult
	return &res, nil
}

func (h *Handler) CheckCallCount() int {
	return h.checkCall
}

func (h *Handler) DeliverCallCount() int {
	return h.deliverCall
}

func (h *Handler) CallCount() int {
	return h.checkCall + h.deliverCall
}
