package server

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	v1 "github.com/statline/statline/gen/proto/statline/v1"
	"github.com/statline/statline/internal/common"
	"github.com/statline/statline/internal/pipeline"
)

func (s *StatlineService) ExtractDocument(ctx context.Context, req *v1.ExtractDocumentRequest) (*v1.ExtractDocumentResponse, error) {
	filename := strings.TrimSpace(req.GetFilename())
	if filename == "" {
		return nil, common.InvalidArgumentError("filename is required")
	}
	if len(req.GetDocument()) == 0 {
		return nil, common.InvalidArgumentError("document is required")
	}

	var procID uuid.UUID
	if pid := strings.TrimSpace(req.GetProcessorId()); pid != "" {
		var err error
		procID, err = uuid.Parse(pid)
		if err != nil {
			return nil, common.InvalidArgumentError("processor_id must be a UUID")
		}
	}

	res, err := s.extract.Run(ctx, pipeline.ExtractRequest{
		Filename:      filename,
		Document:      req.GetDocument(),
		ProcessorID:   procID,
		ProcessorName: strings.TrimSpace(req.GetProcessorName()),
		Strict:        req.GetStrict(),
	})
	if err != nil {
		s.logger.Error("server.extract.failed", "filename", filename, "err", err)
		return nil, statusFromErr(err, "extract failed")
	}

	output, err := json.Marshal(res.Result.Data)
	if err != nil {
		return nil, common.InternalError("serialize output")
	}
	return &v1.ExtractDocumentResponse{
		ExtractionId: res.ExtractionID.String(),
		ProcessorId:  res.Processor.ID.String(),
		OutputJson:   string(output),
		Confidence:   res.Result.Confidence,
		Band:         string(res.Result.Band),
		Success:      res.Result.Success,
		Issues:       issuesToProto(res.Result.Issues),
	}, nil
}
