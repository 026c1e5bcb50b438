package generator

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/entttom/quartabill/internal/model"
	"github.com/entttom/quartabill/internal/numbering"
)

// BatchRequest describes one quarterly run over a customer list.
type BatchRequest struct {
	Customers    []model.Customer
	Issuer       model.Issuer
	Quarter      model.Quarter
	Year         int
	InvoiceDate  time.Time
	NumberFormat string // brace-grammar template; empty uses the default
}

// ItemResult pairs one customer's outcome with its error, if any.
type ItemResult struct {
	Result *Result
	Err    error
}

// BatchResult is the outcome of one quarterly run.
type BatchResult struct {
	RunID   string
	Quarter model.Quarter
	Year    int
	Items   []ItemResult
	Failed  int
}

// GenerateBatch runs the pipeline once per customer, sequentially.
// One customer's failure is recorded and the batch continues; even a
// panic inside composition or rendering is confined to that customer.
func (g *Generator) GenerateBatch(ctx context.Context, req BatchRequest) *BatchResult {
	batch := &BatchResult{
		RunID:   uuid.NewString(),
		Quarter: req.Quarter,
		Year:    req.Year,
	}

	for _, customer := range req.Customers {
		if err := ctx.Err(); err != nil {
			batch.Items = append(batch.Items, ItemResult{
				Err: model.NewGenerationError(customer.Name, "batch cancelled", err),
			})
			batch.Failed++
			continue
		}

		result, err := g.generateOne(ctx, customer, req)
		if err != nil {
			g.log.Warn().Err(err).Str("customer", customer.Name).Msg("invoice generation failed")
			batch.Items = append(batch.Items, ItemResult{Err: err})
			batch.Failed++
			continue
		}

		g.log.Info().
			Str("customer", customer.Name).
			Str("file", result.FileName).
			Int("pages", result.PageCount).
			Msg("invoice generated")
		batch.Items = append(batch.Items, ItemResult{Result: result})
	}

	return batch
}

func (g *Generator) generateOne(ctx context.Context, customer model.Customer, req BatchRequest) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = model.NewGenerationError(customer.Name, fmt.Sprintf("panic: %v", r), nil)
		}
	}()

	ic := model.InvoiceContext{
		InvoiceNumber: numbering.Format(req.NumberFormat, req.Quarter, req.Year, customer.Abbrev, req.InvoiceDate),
		Quarter:       req.Quarter,
		Year:          req.Year,
		InvoiceDate:   req.InvoiceDate,
	}

	result, err = g.Generate(ctx, customer, req.Issuer, ic)
	if err != nil {
		return nil, model.NewGenerationError(customer.Name, "pipeline failed", err)
	}
	return result, nil
}
