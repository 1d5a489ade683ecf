package server

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	v1 "github.com/statline/statline/gen/proto/statline/v1"
	"github.com/statline/statline/internal/common"
)

func (s *StatlineService) ExportExtractions(ctx context.Context, req *v1.ExportExtractionsRequest) (*v1.ExportExtractionsResponse, error) {
	var procID uuid.UUID
	if pid := strings.TrimSpace(req.GetProcessorId()); pid != "" {
		var err error
		procID, err = uuid.Parse(pid)
		if err != nil {
			return nil, common.InvalidArgumentError("processor_id must be a UUID")
		}
	}

	var since time.Time
	if raw := strings.TrimSpace(req.GetSince()); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			t, err = time.Parse("2006-01-02", raw)
		}
		if err != nil {
			return nil, common.InvalidArgumentError("since must be RFC 3339 or YYYY-MM-DD")
		}
		since = t
	}

	xlsx, err := s.export.ExportExtractionsXLSX(ctx, procID, since)
	if err != nil {
		s.logger.Error("server.export.failed", "processor_id", procID, "err", err)
		return nil, common.InternalError("export failed")
	}
	return &v1.ExportExtractionsResponse{Xlsx: xlsx}, nil
}
