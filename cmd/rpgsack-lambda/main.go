// SPDX-License-Identifier: MIT

// Command rpgsack-lambda serves loot reconciliation behind an AWS Lambda
// function URL.
//
// Request body:
//
//	{"persona": "ranged", "capacity": 15, "kept": [...], "loot": [...]}
//
// kept holds previously kept (scored) items, loot the raw new items.
package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"

	"github.com/katalvlaran/rpgsack/item"
	"github.com/katalvlaran/rpgsack/knapsack"
	"github.com/katalvlaran/rpgsack/loot"
	"github.com/katalvlaran/rpgsack/persona"
)

// maxCells caps the DP table per request.
const maxCells = 10_000_000

var jsonHeader = map[string]string{
	"Content-Type": "application/json",
}

type reconcileRequest struct {
	Persona  string            `json:"persona"`
	Capacity *int              `json:"capacity"`
	Kept     []item.ScoredItem `json:"kept"`
	Loot     []item.Item       `json:"loot"`
}

type reconcileResponse struct {
	Persona    string            `json:"persona"`
	Capacity   int               `json:"capacity"`
	Kept       []item.ScoredItem `json:"kept"`
	Discarded  []item.ScoredItem `json:"discarded"`
	TotalScore int               `json:"totalScore"`
	Weight     int               `json:"weight"`
	Overcarry  int               `json:"overcarry"`
}

type handler struct {
	rec *loot.Reconciler
	log logr.Logger
}

func newHandler(log logr.Logger) *handler {
	return &handler{
		rec: loot.NewReconciler(
			loot.WithLogger(log.WithName("loot")),
			loot.WithSolverOptions(knapsack.WithMaxCells(maxCells)),
		),
		log: log,
	}
}

func (h *handler) handle(_ context.Context, event events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
	body := event.Body
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return errResp(http.StatusBadRequest, "invalid base64 body")
		}
		body = string(decoded)
	}

	var req reconcileRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		return errResp(http.StatusBadRequest, "invalid JSON: "+err.Error())
	}
	if req.Capacity == nil {
		return errResp(http.StatusBadRequest, "missing capacity")
	}
	p, ok := persona.Parse(req.Persona)
	if !ok && req.Persona != "" {
		h.log.Info("unknown persona, using balanced", "persona", req.Persona)
	}

	res, err := h.rec.Reconcile(req.Kept, req.Loot, p, *req.Capacity)
	switch {
	case errors.Is(err, knapsack.ErrInvalidCapacity),
		errors.Is(err, item.ErrInvalidItem),
		errors.Is(err, loot.ErrDuplicateInstance):
		return errResp(http.StatusBadRequest, err.Error())
	case errors.Is(err, knapsack.ErrTableTooLarge):
		return errResp(http.StatusRequestEntityTooLarge, err.Error())
	case err != nil:
		h.log.Error(err, "reconcile failed")
		return errResp(http.StatusInternalServerError, "internal error")
	}

	resp := reconcileResponse{
		Persona:    p.String(),
		Capacity:   *req.Capacity,
		Kept:       res.Kept,
		Discarded:  res.Discarded,
		TotalScore: res.TotalScore,
		Weight:     res.Weight(),
		Overcarry:  res.Overcarry,
	}
	respJSON, err := json.Marshal(resp)
	if err != nil {
		return errResp(http.StatusInternalServerError, "encode response")
	}
	return events.LambdaFunctionURLResponse{StatusCode: http.StatusOK, Headers: jsonHeader, Body: string(respJSON)}, nil
}

func errResp(code int, msg string) (events.LambdaFunctionURLResponse, error) {
	body, _ := json.Marshal(map[string]string{"error": msg})
	return events.LambdaFunctionURLResponse{StatusCode: code, Headers: jsonHeader, Body: string(body)}, nil
}

func main() {
	zl, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, "rpgsack-lambda:", err)
		os.Exit(1)
	}
	defer func() { _ = zl.Sync() }()

	h := newHandler(zapr.NewLogger(zl).WithName("rpgsack-lambda"))
	lambda.Start(h.handle)
}
