// Package contract embeds the OpenAPI description of the account service and
// exposes the pieces the client cares about: which operations exist and which
// request fields each one requires. Tests use it to keep the signup ruleset
// and the wire payload in lockstep with the service contract.
package contract

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	_ "embed"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed account-service.json
var documentJSON []byte

// Operation describes one account-service endpoint.
type Operation struct {
	ID       string
	Method   string
	Path     string
	Required []string
	Fields   []string
}

var (
	loadOnce   sync.Once
	operations map[string]Operation
	loadErr    error
)

// Operations parses the embedded document once and returns every operation
// keyed by operationId.
func Operations(ctx context.Context) (map[string]Operation, error) {
	loadOnce.Do(func() {
		operations, loadErr = parseDocument(ctx, documentJSON)
	})
	return operations, loadErr
}

// RequiredFields returns the request fields the contract marks required for
// the given operation.
func RequiredFields(ctx context.Context, operationID string) ([]string, error) {
	ops, err := Operations(ctx)
	if err != nil {
		return nil, err
	}
	op, ok := ops[operationID]
	if !ok {
		return nil, fmt.Errorf("contract: operation %q not found", operationID)
	}
	return append([]string(nil), op.Required...), nil
}

func parseDocument(ctx context.Context, raw []byte) (map[string]Operation, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if len(raw) == 0 {
		return nil, errors.New("contract: embedded document is empty")
	}

	loader := &openapi3.Loader{Context: ctx, IsExternalRefsAllowed: false}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("contract: load document: %w", err)
	}
	if spec.Paths == nil || spec.Paths.Len() == 0 {
		return nil, errors.New("contract: document has no paths")
	}

	out := make(map[string]Operation)
	for path, item := range spec.Paths.Map() {
		if item == nil || item.Post == nil {
			continue
		}
		op, err := convertOperation("POST", path, item.Post)
		if err != nil {
			return nil, err
		}
		out[op.ID] = op
	}
	if len(out) == 0 {
		return nil, errors.New("contract: no operations extracted")
	}
	return out, nil
}

func convertOperation(method, path string, src *openapi3.Operation) (Operation, error) {
	if src.OperationID == "" {
		return Operation{}, fmt.Errorf("contract: operation at %s %s has no id", method, path)
	}
	op := Operation{ID: src.OperationID, Method: method, Path: path}

	schema := requestSchema(src.RequestBody)
	if schema != nil {
		op.Required = append([]string(nil), schema.Required...)
		sort.Strings(op.Required)
		for name := range schema.Properties {
			op.Fields = append(op.Fields, name)
		}
		sort.Strings(op.Fields)
	}
	return op, nil
}

func requestSchema(ref *openapi3.RequestBodyRef) *openapi3.Schema {
	if ref == nil || ref.Value == nil {
		return nil
	}
	mt, ok := ref.Value.Content["application/json"]
	if !ok || mt.Schema == nil {
		return nil
	}
	return mt.Schema.Value
}
