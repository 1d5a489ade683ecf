package server

import (
	"context"
	"strings"

	v1 "github.com/statline/statline/gen/proto/statline/v1"
	"github.com/statline/statline/internal/common"
	"github.com/statline/statline/internal/pipeline"
)

func (s *StatlineService) LearnProcessor(ctx context.Context, req *v1.LearnProcessorRequest) (*v1.LearnProcessorResponse, error) {
	filename := strings.TrimSpace(req.GetFilename())
	if filename == "" {
		return nil, common.InvalidArgumentError("filename is required")
	}
	if len(req.GetDocument()) == 0 {
		return nil, common.InvalidArgumentError("document is required")
	}
	if strings.TrimSpace(req.GetDesiredOutputJson()) == "" {
		return nil, common.InvalidArgumentError("desired_output_json is required")
	}
	name := strings.TrimSpace(req.GetProcessorName())
	if name == "" {
		return nil, common.InvalidArgumentError("processor_name is required")
	}

	res, err := s.learn.Run(ctx, pipeline.LearnRequest{
		Filename:      filename,
		Document:      req.GetDocument(),
		DesiredOutput: []byte(req.GetDesiredOutputJson()),
		DocumentType:  req.GetDocumentType(),
		ProcessorName: name,
	})
	if err != nil {
		s.logger.Error("server.learn.failed", "filename", filename, "err", err)
		return nil, statusFromErr(err, "learn failed")
	}

	return &v1.LearnProcessorResponse{
		Processor:     processorToProto(res.Processor),
		Similarity:    res.Report.Similarity,
		LowSimilarity: res.Report.LowSimilarity,
		Confidence:    res.Report.Confidence,
		Band:          res.Report.Band,
	}, nil
}
