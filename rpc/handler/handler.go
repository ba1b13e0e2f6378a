// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package handler - HTTP endpoints served by the HTTPS listener
package handler

import (
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/rpc"
	"net/rpc/jsonrpc"
	"sync"
	"time"

	"github.com/bitmark-inc/circled/account"
	"github.com/bitmark-inc/circled/amount"
	"github.com/bitmark-inc/circled/circle"
	"github.com/bitmark-inc/circled/counter"
	"github.com/bitmark-inc/circled/deployer"
	"github.com/bitmark-inc/circled/engine"
	"github.com/bitmark-inc/circled/fault"
	"github.com/bitmark-inc/logger"
)

// allow list names
const (
	allowDetails      = "details"
	allowCreateCircle = "create-circle"
)

const maximumBodySize = 1 << 16

// Handler - the set of HTTP endpoints
type Handler interface {
	Root(http.ResponseWriter, *http.Request)
	RPC(http.ResponseWriter, *http.Request)
	Details(http.ResponseWriter, *http.Request)
	CreateCircle(http.ResponseWriter, *http.Request)
	SetAllow(map[string][]*net.IPNet)
}

type handler struct {
	sync.RWMutex

	log                *logger.L
	server             *rpc.Server
	engine             engine.Engine
	start              time.Time
	version            string
	allow              map[string][]*net.IPNet
	count              counter.Counter
	maximumConnections uint64
}

// InternalConnection - type to allow rpc system to interface to http request
type InternalConnection struct {
	in  io.Reader
	out io.Writer
}

func (c *InternalConnection) Read(p []byte) (n int, err error) {
	return c.in.Read(p)
}

func (c *InternalConnection) Write(d []byte) (n int, err error) {
	return c.out.Write(d)
}

// Close - nothing to close
func (c *InternalConnection) Close() error {
	return nil
}

// New - create the HTTP endpoints
func New(log *logger.L, server *rpc.Server, e engine.Engine, start time.Time, version string, maximumConnections uint64) Handler {
	return &handler{
		log:                log,
		server:             server,
		engine:             e,
		start:              start,
		version:            version,
		allow:              make(map[string][]*net.IPNet),
		maximumConnections: maximumConnections,
	}
}

// SetAllow - replace the CIDR access lists
func (h *handler) SetAllow(allow map[string][]*net.IPNet) {
	h.Lock()
	h.allow = allow
	h.Unlock()
}

// Root - this matches anything not matched and returns error
func (h *handler) Root(w http.ResponseWriter, r *http.Request) {
	sendNotFound(w)
}

// RPC - performs a call to any normal RPC
func (h *handler) RPC(w http.ResponseWriter, r *http.Request) {
	if http.MethodPost != r.Method {
		sendMethodNotAllowed(w)
		return
	}

	if !h.count.Acquire(h.maximumConnections) {
		sendTooManyRequests(w)
		return
	}
	defer h.count.Release()

	serverCodec := jsonrpc.NewServerCodec(&InternalConnection{
		in:  http.MaxBytesReader(w, r.Body, maximumBodySize),
		out: w,
	})
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	err := h.server.ServeRequest(serverCodec)
	if nil != err {
		h.log.Debugf("rpc error: %s", err)
		sendInternalServerError(w)
		return
	}
}

// Details - GET a summary of the node, restricted by the "details" list
func (h *handler) Details(w http.ResponseWriter, r *http.Request) {
	if http.MethodGet != r.Method {
		sendMethodNotAllowed(w)
		return
	}

	if !h.allowed(allowDetails, r, false) {
		h.log.Warnf("deny access: %q", r.RemoteAddr)
		sendForbidden(w)
		return
	}

	if !h.count.Acquire(h.maximumConnections) {
		sendTooManyRequests(w)
		return
	}
	defer h.count.Release()

	type theReply struct {
		Version     string      `json:"version"`
		Uptime      string      `json:"uptime"`
		Connections uint64      `json:"connections"`
		Engine      engine.Info `json:"engine"`
	}

	sendReply(w, http.StatusOK, theReply{
		Version:     h.version,
		Uptime:      time.Since(h.start).String(),
		Connections: h.count.Uint64(),
		Engine:      h.engine.Info(),
	})
}

// CreateCircleRequest - body of POST /api/create-circle
//
// Caller is trusted as sent, so the path should carry an allow list
type CreateCircleRequest struct {
	Name        string `json:"name"`
	Goal        string `json:"goal"`
	Amount      string `json:"amount"`
	Period      uint64 `json:"period"`
	CircleOwner string `json:"circleOwner"`
	IsPremium   bool   `json:"isPremium"`
	Fee         string `json:"fee"`
	Caller      string `json:"caller"`
}

// CreateCircleResponse - body returned by POST /api/create-circle
type CreateCircleResponse struct {
	Success  bool   `json:"success"`
	TxHash   string `json:"txHash,omitempty"`
	CircleId uint64 `json:"circleId,omitempty"`
	Error    string `json:"error,omitempty"`
}

// CreateCircle - relay a circle creation through the deployer
//
// restricted only if a "create-circle" list is configured; the caller
// defaults to the circle owner
func (h *handler) CreateCircle(w http.ResponseWriter, r *http.Request) {
	if http.MethodPost != r.Method {
		sendMethodNotAllowed(w)
		return
	}

	if !h.allowed(allowCreateCircle, r, true) {
		h.log.Warnf("deny access: %q", r.RemoteAddr)
		sendForbidden(w)
		return
	}

	if !h.count.Acquire(h.maximumConnections) {
		sendTooManyRequests(w)
		return
	}
	defer h.count.Release()

	var body CreateCircleRequest
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maximumBodySize))
	if err := decoder.Decode(&body); nil != err {
		sendCreateError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	request, caller, fee, err := body.decode()
	if nil != err {
		sendCreateError(w, StatusOf(err), err.Error())
		return
	}

	h.log.Infof("relay create: %q  owner: %s  caller: %s  premium: %t", request.Settings.Name, request.Owner, caller, request.Settings.IsPremium)

	receipt, c, err := h.engine.DeployCircle(caller, request, fee)
	if nil != err {
		h.log.Warnf("relay create: %q  error: %s", request.Settings.Name, err)
		sendCreateError(w, StatusOf(err), err.Error())
		return
	}

	sendReply(w, http.StatusOK, CreateCircleResponse{
		Success:  true,
		TxHash:   receipt.TxId.String(),
		CircleId: c.Id,
	})
}

// convert the wire form into a deployer request
func (body *CreateCircleRequest) decode() (deployer.Request, account.Address, uint64, error) {
	owner, err := account.AddressFromString(body.CircleOwner)
	if nil != err {
		return deployer.Request{}, account.Address{}, 0, err
	}

	caller := owner
	if "" != body.Caller {
		caller, err = account.AddressFromString(body.Caller)
		if nil != err {
			return deployer.Request{}, account.Address{}, 0, err
		}
	}

	goal, err := amount.Parse(body.Goal)
	if nil != err {
		return deployer.Request{}, account.Address{}, 0, fault.ErrInvalidGoal
	}
	contribution, err := amount.Parse(body.Amount)
	if nil != err {
		return deployer.Request{}, account.Address{}, 0, err
	}
	fee := uint64(0)
	if "" != body.Fee {
		fee, err = amount.Parse(body.Fee)
		if nil != err {
			return deployer.Request{}, account.Address{}, 0, err
		}
	}

	request := deployer.Request{
		Owner: owner,
		Settings: circle.Settings{
			Name:               body.Name,
			Goal:               goal,
			ContributionAmount: contribution,
			ContributionPeriod: body.Period,
			IsPremium:          body.IsPremium,
		},
	}
	return request, caller, fee, nil
}

// StatusOf - HTTP status for an engine error
func StatusOf(err error) int {
	switch {
	case fault.IsErrInvalid(err), fault.IsErrBalance(err):
		return http.StatusBadRequest
	case fault.IsErrPermission(err):
		return http.StatusForbidden
	case fault.IsErrNotFound(err):
		return http.StatusNotFound
	case fault.IsErrExists(err), fault.IsErrProcess(err):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// check the remote address against a named list
//
// openByDefault: an unconfigured list admits everyone
func (h *handler) allowed(name string, r *http.Request, openByDefault bool) bool {
	h.RLock()
	defer h.RUnlock()

	set, ok := h.allow[name]
	if !ok {
		return openByDefault
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if nil != err {
		return false
	}
	ip := net.ParseIP(host)
	if nil == ip {
		return false
	}
	for _, cidr := range set {
		if cidr.Contains(ip) {
			return true
		}
	}
	return false
}

func sendCreateError(w http.ResponseWriter, code int, message string) {
	sendReply(w, code, CreateCircleResponse{
		Success: false,
		Error:   message,
	})
}

// send an JSON encoded reply
func sendReply(w http.ResponseWriter, code int, data interface{}) {
	text, err := json.Marshal(data)
	if nil != err {
		sendInternalServerError(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	_, _ = w.Write(text)
}

// selected errors as required above
func sendNotFound(w http.ResponseWriter) {
	sendError(w, "not found", http.StatusNotFound)
}
func sendMethodNotAllowed(w http.ResponseWriter) {
	sendError(w, "method not allowed", http.StatusMethodNotAllowed)
}
func sendForbidden(w http.ResponseWriter) {
	sendError(w, "forbidden", http.StatusForbidden)
}
func sendTooManyRequests(w http.ResponseWriter) {
	sendError(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
}
func sendInternalServerError(w http.ResponseWriter) {
	sendError(w, "internal server error", http.StatusInternalServerError)
}

// to compose JSON error messages
type eType struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}

// output an error with a JSON body
func sendError(w http.ResponseWriter, message string, code int) {
	text, err := json.Marshal(eType{
		Code:  code,
		Error: message,
	})
	if nil != err {
		// manually composed error just incase JSON fails
		http.Error(w, `{"code":500,"error":"Internal Server Error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	_, _ = w.Write(text)
}
