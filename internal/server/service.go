// Package server implements the gRPC surface over the learn and extract
// pipelines.
package server

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/statline/statline/gen/ent"
	v1 "github.com/statline/statline/gen/proto/statline/v1"
	"github.com/statline/statline/internal/common"
	"github.com/statline/statline/internal/execute"
	"github.com/statline/statline/internal/export"
	"github.com/statline/statline/internal/pipeline"
	"github.com/statline/statline/internal/processor"
	"github.com/statline/statline/internal/repository"
)

type StatlineService struct {
	v1.UnimplementedStatlineServiceServer
	learn   *pipeline.LearnPipeline
	extract *pipeline.ExtractPipeline
	procs   repository.ProcessorRepository
	export  *export.Service
	logger  *slog.Logger
}

func NewStatlineService(learn *pipeline.LearnPipeline, extract *pipeline.ExtractPipeline, procs repository.ProcessorRepository, exp *export.Service, logger *slog.Logger) *StatlineService {
	if logger == nil {
		logger = slog.Default()
	}
	return &StatlineService{
		learn:   learn,
		extract: extract,
		procs:   procs,
		export:  exp,
		logger:  logger,
	}
}

// statusFromErr maps engine error codes onto gRPC statuses.
func statusFromErr(err error, fallback string) error {
	if ent.IsNotFound(err) {
		return common.NotFoundError("processor not found")
	}
	switch common.ErrorCode(err) {
	case common.CodeIngestion:
		return common.InvalidArgumentError(err.Error())
	case common.CodeProcessorInvalid, common.CodeMissingAnchor:
		return common.FailedPreconditionError(err.Error())
	case common.CodeSynthesisParse:
		return common.InternalError(err.Error())
	default:
		return common.InternalError(fallback)
	}
}

func processorToProto(p *processor.Processor) *v1.Processor {
	rules, _ := json.Marshal(p.RuleSet)
	return &v1.Processor{
		Id:           p.ID.String(),
		Name:         p.Name,
		DocumentType: p.DocumentType,
		Version:      int32(p.Version),
		LayoutHash:   p.LayoutHash,
		RulesJson:    string(rules),
		SuccessCount: int32(p.SuccessCount),
		FailureCount: int32(p.FailureCount),
		CreatedAt:    p.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt:    p.UpdatedAt.Format(time.RFC3339Nano),
	}
}

func issuesToProto(issues []execute.Issue) []*v1.Issue {
	out := make([]*v1.Issue, 0, len(issues))
	for _, is := range issues {
		out = append(out, &v1.Issue{
			Code:     is.Code,
			Severity: is.Severity,
			Message:  is.Message,
			Field:    is.Field,
			Region:   is.Region,
			Anchor:   is.Anchor,
		})
	}
	return out
}
