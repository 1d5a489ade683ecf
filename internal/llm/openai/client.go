package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/statline/statline/internal/common"
	"github.com/statline/statline/internal/llm"
	"github.com/statline/statline/internal/processor"
)

// SynthesizeRules implements llm.RuleSynthesizer using text-only
// chat/completions. The response is validated against the rule spec schema
// strictly first; on failure we sanitize known near-misses and validate
// once more before giving up.
func (c *Client) SynthesizeRules(ctx context.Context, req llm.SynthesisRequest) (processor.RuleSet, []byte, error) {
	rid := uuid.New().String()
	ctx = common.WithRequestID(ctx, rid) // the HTTP layer logs under the same id
	start := time.Now()

	c.log.Info("llm.synthesize.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"temp", c.cfg.Temperature,
		"document_type", req.DocumentType,
		"block_summary_len", len(req.BlockSummary),
		"raw_text_len", len(req.RawTextExcerpt),
		"desired_len", len(req.DesiredOutput),
	)

	schema := llm.BuildRuleSetJSONSchema()
	sys := llm.BuildSystemPrompt(req)
	user := llm.BuildUserPrompt(req)

	body := map[string]any{
		"model":           c.cfg.Model,
		"temperature":     c.cfg.Temperature,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "system", "content": sys},
			{"role": "user", "content": user},
			{"role": "system", "content": "JSON Schema:\n" + mustJSON(schema)},
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	headers := map[string]string{"Authorization": "Bearer " + c.cfg.APIKey}
	raw, _, httpErr := llm.SendJSON(ctx, c.httpClient, endpoint, body, headers, c.log)
	if httpErr != nil {
		c.log.Error("llm.synthesize.http_error",
			"req_id", rid, "error", httpErr,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return processor.RuleSet{}, nil, httpErr
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		c.log.Error("llm.synthesize.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return processor.RuleSet{}, raw, fmt.Errorf("decode openai response: %w", err)
	}
	if len(cc.Choices) == 0 {
		c.log.Error("llm.synthesize.no_choices",
			"req_id", rid, "raw", string(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return processor.RuleSet{}, raw, fmt.Errorf("no choices in openai response")
	}
	content := llm.StripFences([]byte(strings.TrimSpace(cc.Choices[0].Message.Content)))

	// Validate strictly first.
	if err := llm.ValidateJSONAgainstSchema(schema, content); err != nil {
		if !c.cfg.LenientSanitize {
			c.log.Error("llm.synthesize.schema_validation_failed",
				"req_id", rid, "error", err, "content", string(content),
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return processor.RuleSet{}, content, fmt.Errorf("schema validation failed: %w", err)
		}
		cleaned, dropped, sErr := llm.NormalizeAndSanitizeRuleSet(content, c.log)
		if sErr != nil {
			c.log.Error("llm.synthesize.sanitize_failed",
				"req_id", rid, "error", sErr,
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return processor.RuleSet{}, content, fmt.Errorf("sanitize failed: %w", sErr)
		}
		if vErr := llm.ValidateJSONAgainstSchema(schema, cleaned); vErr != nil {
			c.log.Error("llm.synthesize.schema_validation_failed",
				"req_id", rid, "error", vErr, "content", string(cleaned),
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return processor.RuleSet{}, cleaned, fmt.Errorf("schema validation failed: %w", vErr)
		}
		c.log.Warn("llm.synthesize.lenient_sanitize_applied",
			"req_id", rid, "dropped", dropped,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		content = cleaned
	}

	var out processor.RuleSet
	if err := json.Unmarshal(content, &out); err != nil {
		c.log.Error("llm.synthesize.unmarshal_failed",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return processor.RuleSet{}, content, fmt.Errorf("unmarshal rule set: %w", err)
	}

	c.log.Info("llm.synthesize.ok",
		"req_id", rid,
		"anchors", len(out.Anchors),
		"regions", len(out.Regions),
		"ops", len(out.ExtractionOps),
		"calculations", len(out.Calculations),
		"validations", len(out.Validations),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, content, nil
}

func mustJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(b)
}
