// Package api holds the HTTP contract described by openapi.yaml. The types
// and chi wiring in api.gen.go are generated from it.
package api

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen --config=oapi-codegen.yaml openapi.yaml

import "netprofile/internal/domain"

// ToDomain converts wire responses to the scoring core's type.
func ToDomain(in []Response) []domain.Response {
	out := make([]domain.Response, len(in))
	for i, r := range in {
		out[i] = domain.Response{QuestionID: r.QuestionId, Answer: r.Answer}
	}
	return out
}
