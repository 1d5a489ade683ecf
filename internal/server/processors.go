package server

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/statline/statline/constants"
	v1 "github.com/statline/statline/gen/proto/statline/v1"
	"github.com/statline/statline/internal/common"
	"github.com/statline/statline/internal/processor"
)

func (s *StatlineService) GetProcessor(ctx context.Context, req *v1.GetProcessorRequest) (*v1.GetProcessorResponse, error) {
	var (
		p   *processor.Processor
		err error
	)
	switch {
	case strings.TrimSpace(req.GetId()) != "":
		id, perr := uuid.Parse(strings.TrimSpace(req.GetId()))
		if perr != nil {
			return nil, common.InvalidArgumentError("id must be a UUID")
		}
		p, err = s.procs.GetByID(ctx, id)
	case strings.TrimSpace(req.GetName()) != "":
		p, err = s.procs.GetByName(ctx, strings.TrimSpace(req.GetName()))
	default:
		return nil, common.InvalidArgumentError("id or name is required")
	}
	if err != nil {
		s.logger.Warn("server.get_processor.failed", "err", err)
		return nil, statusFromErr(err, "get processor failed")
	}
	return &v1.GetProcessorResponse{Processor: processorToProto(p)}, nil
}

func (s *StatlineService) ListProcessors(ctx context.Context, req *v1.ListProcessorsRequest) (*v1.ListProcessorsResponse, error) {
	docType := strings.TrimSpace(req.GetDocumentType())
	if docType != "" {
		canonical, ok := constants.CanonicalizeDocumentType(docType)
		if !ok {
			return nil, common.InvalidArgumentError("unknown document_type")
		}
		docType = string(canonical)
	}

	ps, err := s.procs.List(ctx, docType)
	if err != nil {
		s.logger.Warn("server.list_processors.failed", "err", err)
		return nil, common.InternalError("list processors failed")
	}
	out := make([]*v1.Processor, 0, len(ps))
	for _, p := range ps {
		out = append(out, processorToProto(p))
	}
	return &v1.ListProcessorsResponse{Processors: out}, nil
}
