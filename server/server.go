// Package server receives payment notifications from the gateway.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"net/url"

	"freekassa/client/freekassa"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
)

const paymentNotify = "/notify"

// Verifier checks a notification's signature. *freekassa.Client implements it.
type Verifier interface {
	VerifyNotification(values url.Values) (*freekassa.Notification, error)
}

// Handler is called once per verified notification. Returning an error makes
// the gateway retry later.
type Handler func(ctx context.Context, n *freekassa.Notification) error

type Server struct {
	verifier   Verifier
	handler    Handler
	httpServer *http.Server
}

func NewServer(verifier Verifier, handler Handler) *Server {
	s := &Server{
		verifier: verifier,
		handler:  handler,
	}
	router := httprouter.New()
	s.Register(router)
	s.httpServer = &http.Server{Handler: router}
	return s
}

func (s *Server) Register(router *httprouter.Router) {
	router.POST(paymentNotify, s.paymentNotify)
}

// Start listens on address and serves until Shutdown.
func (s *Server) Start(address string) error {
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return err
	}
	return s.Serve(listener)
}

func (s *Server) Serve(listener net.Listener) error {
	slog.Info("[NotifyServer] Listening", "address", listener.Addr().String())
	err := s.httpServer.Serve(listener)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) paymentNotify(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	reqId := uuid.NewString()

	if err := r.ParseForm(); err != nil {
		slog.Warn("[NotifyServer] Unreadable notification", "request_id", reqId, "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	n, err := s.verifier.VerifyNotification(r.Form)
	if err != nil {
		if errors.Is(err, freekassa.ErrConfiguration) {
			slog.Error("[NotifyServer] Cannot verify notifications", "request_id", reqId, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		slog.Warn("[NotifyServer] Notification rejected", "request_id", reqId, "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	slog.Info("[NotifyServer] Payment notification", "request_id", reqId, "order_id", n.OrderId, "intid", n.IntId, "amount", n.Amount.String())
	if s.handler != nil {
		if err := s.handler(r.Context(), n); err != nil {
			slog.Error("[NotifyServer] Notification handler failed", "request_id", reqId, "order_id", n.OrderId, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(freekassa.NotificationReply))
}
