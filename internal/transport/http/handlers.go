package http

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/haisapan/ethereum-trading-mcp-server/internal/apperrors"
	"github.com/haisapan/ethereum-trading-mcp-server/internal/service/dto"
)

// errorBody is the JSON error envelope: a machine-checkable kind plus a
// human-readable message.
type errorBody struct {
	Error struct {
		Kind    string `json:"kind"`
		Message string `json:"message"`
	} `json:"error"`
}

func (s *Server) handleBalance(w http.ResponseWriter, r *http.Request) {
	var req dto.BalanceRequest
	if !s.decode(w, r, &req) {
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()

	res, err := s.svc.GetBalance(ctx, req)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, res)
}

func (s *Server) handlePrice(w http.ResponseWriter, r *http.Request) {
	var req dto.PriceRequest
	if !s.decode(w, r, &req) {
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()

	res, err := s.svc.GetTokenPrice(ctx, req)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleSwap(w http.ResponseWriter, r *http.Request) {
	var req dto.SwapRequest
	if !s.decode(w, r, &req) {
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()

	res, err := s.svc.SwapTokens(ctx, req)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, res)
}

func (s *Server) requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), s.requestTimeout)
}

// decode parses a POST JSON body into req. It writes the error response
// itself and reports whether the handler should proceed.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, req interface{}) bool {
	if r.Method != http.MethodPost {
		s.writeJSON(w, http.StatusMethodNotAllowed, envelope("invalid_argument", "POST required"))
		return false
	}
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, envelope("invalid_argument", "malformed JSON body: "+err.Error()))
		return false
	}
	return true
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	kind := apperrors.Kind(err)
	s.writeJSON(w, statusFor(kind), envelope(kind, err.Error()))
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Warn("response write failed", zap.Error(err))
	}
}

func envelope(kind, message string) errorBody {
	var body errorBody
	body.Error.Kind = kind
	body.Error.Message = message
	return body
}

func statusFor(kind string) int {
	switch kind {
	case "invalid_argument", "invalid_amount", "invalid_slippage", "overflow":
		return http.StatusBadRequest
	case "unknown_token", "pair_not_found", "no_route_found":
		return http.StatusNotFound
	case "insufficient_liquidity":
		return http.StatusUnprocessableEntity
	case "gateway_timeout":
		return http.StatusGatewayTimeout
	case "gateway_unavailable", "estimation_failed":
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
