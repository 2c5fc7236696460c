package bankdesk

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/bwmarrin/snowflake"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type msgJSONResp struct {
	Msg string `json:"msg"`
}

type chargeJSONResp struct {
	Msg string `json:"msg"`
	BalanceChange
}

func NewHTTPHandler(svc Service, log *zerolog.Logger) http.Handler {
	hndlr := &httpHandler{
		Svc: svc,
		Log: log,
	}
	mux := chi.NewMux()
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))
	mux.NotFound(HTTPNotFound)
	mux.Route("/api", func(r chi.Router) {
		r.Route("/accounts", func(rr chi.Router) {
			rr.Post("/", hndlr.CreateAccount)
			rr.Get("/", hndlr.ListAccounts)
			rr.Route("/{accNo:[0-9]+}", func(rrr chi.Router) {
				rrr.Get("/", hndlr.GetAccount)
				rrr.Delete("/", hndlr.DeleteAccount)
				rrr.Post("/deposit", hndlr.Deposit)
				rrr.Post("/withdraw", hndlr.Withdraw)
				rrr.Get("/transactions", hndlr.ListTransactions)
				rrr.Put("/full-update", hndlr.RenumberAccount)
				rrr.Post("/locker", hndlr.CreateLocker)
				rrr.Get("/locker", hndlr.GetLocker)
				rrr.Get("/statement", hndlr.Statement)
			})
		})
		r.Post("/locker/access", hndlr.VerifyAccess)
		r.Route("/requests", func(rr chi.Router) {
			rr.Post("/", hndlr.SubmitRequest)
			rr.Get("/", hndlr.ListRequests)
			rr.Post("/{reqID:[0-9]+}/decision", hndlr.DecideRequest)
		})
		r.Delete("/wipe", hndlr.WipeAll)
	})

	return mux
}

type httpHandler struct {
	Svc Service
	Log *zerolog.Logger
}

func (h *httpHandler) accNoParam(r *http.Request, method string) (int64, error) {
	raw := chi.URLParam(r, "accNo")
	accNo, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		h.Log.Err(err).Str("method", method).Msg("error parsing account number")
		return 0, ErrBadRequest{Fields: map[string]string{"acc_no": "invalid format"}}
	}
	return accNo, nil
}

func (h *httpHandler) decodeBody(r *http.Request, method string, into interface{}) error {
	buf, err := io.ReadAll(r.Body)
	defer r.Body.Close()
	if err != nil {
		h.Log.Err(err).Str("method", method).Msg("error reading HTTP request")
		return ErrInternalServer
	}
	if err = json.Unmarshal(buf, into); err != nil {
		h.Log.Err(err).Str("method", method).Msg("error unmarshalling JSON")
		return ErrBadRequest{Fields: map[string]string{"request body": "malformed JSON"}}
	}
	return nil
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		WriteHTTPError(w, err)
	}
}

func (h *httpHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var req CreateAccountReq
	if err := h.decodeBody(r, "createAccount", &req); err != nil {
		WriteHTTPError(w, err)
		return
	}
	acct, err := h.Svc.CreateAccount(r.Context(), req)
	if err != nil {
		WriteHTTPError(w, err)
		return
	}
	writeJSON(w, acct)
}

func (h *httpHandler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	accts, err := h.Svc.ListAccounts(r.Context())
	if err != nil {
		WriteHTTPError(w, err)
		return
	}
	writeJSON(w, accts)
}

func (h *httpHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	accNo, err := h.accNoParam(r, "getAccount")
	if err != nil {
		WriteHTTPError(w, err)
		return
	}
	acct, err := h.Svc.GetAccount(r.Context(), accNo)
	if err != nil {
		WriteHTTPError(w, err)
		return
	}
	writeJSON(w, acct)
}

func (h *httpHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	accNo, err := h.accNoParam(r, "deleteAccount")
	if err != nil {
		WriteHTTPError(w, err)
		return
	}
	if err = h.Svc.DeleteAccount(r.Context(), accNo); err != nil {
		WriteHTTPError(w, err)
		return
	}
	writeJSON(w, msgJSONResp{Msg: "Account deleted"})
}

func (h *httpHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	h.charge(w, r, "deposit", h.Svc.Deposit, "Deposit successful")
}

func (h *httpHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	h.charge(w, r, "withdraw", h.Svc.Withdraw, "Withdraw successful")
}

func (h *httpHandler) charge(
	w http.ResponseWriter,
	r *http.Request,
	method string,
	svcFn func(ctx context.Context, req ChargeReq) (*BalanceChange, error),
	okMsg string,
) {
	var req ChargeReq
	if err := h.decodeBody(r, method, &req); err != nil {
		WriteHTTPError(w, err)
		return
	}
	accNo, err := h.accNoParam(r, method)
	if err != nil {
		WriteHTTPError(w, err)
		return
	}
	req.AccNo = accNo
	chg, err := svcFn(r.Context(), req)
	if err != nil {
		WriteHTTPError(w, err)
		return
	}
	writeJSON(w, chargeJSONResp{Msg: okMsg, BalanceChange: *chg})
}

func (h *httpHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	accNo, err := h.accNoParam(r, "listTransactions")
	if err != nil {
		WriteHTTPError(w, err)
		return
	}
	txns, err := h.Svc.ListTransactions(r.Context(), accNo)
	if err != nil {
		WriteHTTPError(w, err)
		return
	}
	writeJSON(w, txns)
}

func (h *httpHandler) RenumberAccount(w http.ResponseWriter, r *http.Request) {
	var req RenumberReq
	if err := h.decodeBody(r, "renumberAccount", &req); err != nil {
		WriteHTTPError(w, err)
		return
	}
	oldAccNo, err := h.accNoParam(r, "renumberAccount")
	if err != nil {
		WriteHTTPError(w, err)
		return
	}
	req.OldAccNo = oldAccNo
	if err = h.Svc.RenumberAccount(r.Context(), req); err != nil {
		WriteHTTPError(w, err)
		return
	}
	writeJSON(w, msgJSONResp{Msg: "Account updated"})
}

func (h *httpHandler) CreateLocker(w http.ResponseWriter, r *http.Request) {
	accNo, err := h.accNoParam(r, "createLocker")
	if err != nil {
		WriteHTTPError(w, err)
		return
	}
	lkr, err := h.Svc.CreateLocker(r.Context(), accNo)
	if err != nil {
		WriteHTTPError(w, err)
		return
	}
	writeJSON(w, lkr)
}

func (h *httpHandler) GetLocker(w http.ResponseWriter, r *http.Request) {
	accNo, err := h.accNoParam(r, "getLocker")
	if err != nil {
		WriteHTTPError(w, err)
		return
	}
	lkr, err := h.Svc.GetLocker(r.Context(), accNo)
	if err != nil {
		WriteHTTPError(w, err)
		return
	}
	writeJSON(w, lkr)
}

type lockerAccessReq struct {
	AccNo     int64  `json:"acc_no"`
	LockerKey string `json:"locker_key"`
}

func (h *httpHandler) VerifyAccess(w http.ResponseWriter, r *http.Request) {
	var req lockerAccessReq
	if err := h.decodeBody(r, "verifyAccess", &req); err != nil {
		WriteHTTPError(w, err)
		return
	}
	if err := h.Svc.VerifyAccess(r.Context(), req.AccNo, req.LockerKey); err != nil {
		WriteHTTPError(w, err)
		return
	}
	writeJSON(w, msgJSONResp{Msg: "Locker access granted"})
}

func (h *httpHandler) SubmitRequest(w http.ResponseWriter, r *http.Request) {
	var req SubmitRequestReq
	if err := h.decodeBody(r, "submitRequest", &req); err != nil {
		WriteHTTPError(w, err)
		return
	}
	stored, err := h.Svc.SubmitRequest(r.Context(), req)
	if err != nil {
		WriteHTTPError(w, err)
		return
	}
	writeJSON(w, stored)
}

func (h *httpHandler) ListRequests(w http.ResponseWriter, r *http.Request) {
	reqs, err := h.Svc.ListRequests(r.Context())
	if err != nil {
		WriteHTTPError(w, err)
		return
	}
	writeJSON(w, reqs)
}

type decisionJSONReq struct {
	Action DecisionAction `json:"action"`
}

func (h *httpHandler) DecideRequest(w http.ResponseWriter, r *http.Request) {
	var body decisionJSONReq
	if err := h.decodeBody(r, "decideRequest", &body); err != nil {
		WriteHTTPError(w, err)
		return
	}
	pid := chi.URLParam(r, "reqID")
	reqID, err := snowflake.ParseString(pid)
	if err != nil {
		h.Log.Err(err).Str("method", "decideRequest").Msg("error parsing request ID")
		WriteHTTPError(w, ErrBadRequest{Fields: map[string]string{"id": "invalid format"}})
		return
	}
	dec, err := h.Svc.DecideRequest(r.Context(), reqID, body.Action)
	if err != nil {
		WriteHTTPError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	// an approval that re-validation turned into a rejection reads as
	// a client error, not a clean 200
	if dec.AutoRejected {
		w.WriteHeader(http.StatusBadRequest)
	}
	if err = json.NewEncoder(w).Encode(dec); err != nil {
		WriteHTTPError(w, err)
	}
}

func (h *httpHandler) Statement(w http.ResponseWriter, r *http.Request) {
	accNo, err := h.accNoParam(r, "statement")
	if err != nil {
		WriteHTTPError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	if err = h.Svc.Statement(r.Context(), w, accNo); err != nil {
		WriteHTTPError(w, err)
	}
}

func (h *httpHandler) WipeAll(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.WipeAll(r.Context()); err != nil {
		WriteHTTPError(w, err)
		return
	}
	writeJSON(w, msgJSONResp{Msg: "All data wiped"})
}

func WriteHTTPError(w http.ResponseWriter, err error) {
	var ne error
	defer func() {
		if ne != nil {
			log.Error().
				Err(ne).
				Msg("error response encoding failed")
		}
	}()

	w.Header().Set("Content-Type", "application/json")
	errbr := &ErrBadRequest{}
	errnf := &ErrNotFound{}
	errcf := &ErrConflict{}
	errif := &ErrInsufficientFunds{}
	errua := &ErrUnauthorized{}
	erris := &ErrInvalidState{}
	switch {
	case errors.As(err, errbr):
		w.WriteHeader(http.StatusBadRequest)
		ne = json.NewEncoder(w).Encode(errbr)
	case errors.As(err, errif):
		w.WriteHeader(http.StatusBadRequest)
		ne = json.NewEncoder(w).Encode(msgJSONResp{Msg: errif.Error()})
	case errors.As(err, errnf):
		w.WriteHeader(http.StatusNotFound)
		ne = json.NewEncoder(w).Encode(errnf)
	case errors.As(err, errcf):
		w.WriteHeader(http.StatusConflict)
		ne = json.NewEncoder(w).Encode(msgJSONResp{Msg: errcf.Error()})
	case errors.As(err, erris):
		w.WriteHeader(http.StatusConflict)
		ne = json.NewEncoder(w).Encode(msgJSONResp{Msg: erris.Error()})
	case errors.As(err, errua):
		w.WriteHeader(http.StatusUnauthorized)
		ne = json.NewEncoder(w).Encode(msgJSONResp{Msg: errua.Error()})
	default:
		w.WriteHeader(http.StatusInternalServerError)
		ne = json.NewEncoder(w).Encode(msgJSONResp{Msg: "server error"})
	}
}

func HTTPNotFound(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
	w.Header().Set("Content-Type", "application/json")
	resp := map[string]string{
		"path": r.URL.Path,
	}
	json.NewEncoder(w).Encode(resp)
}
