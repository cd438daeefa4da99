package utils

import (
	"errors"
	"strconv"
	"strings"

	"github.com/tarimpazar/tarimpazar/internal/models"
)

// ParseListingRef resolves a typed listing reference like "prod-42" or
// "job-7" into a target type and id. The two-letter prefix convention is the
// wire format clients use to name a listing without a separate type field.
func ParseListingRef(ref string) (string, uint, error) {
	ref = strings.TrimSpace(ref)

	if ref == "" {
		return "", 0, errors.New("listing reference cannot be empty")
	}

	prefix, idPart, found := strings.Cut(ref, "-")

	if !found || idPart == "" {
		return "", 0, errors.New("malformed listing reference")
	}

	var targetType string

	switch prefix {
	case "prod":
		targetType = models.ReportTargetProduct
	case "job":
		targetType = models.ReportTargetJobPosting
	default:
		return "", 0, errors.New("unknown listing reference prefix")
	}

	id, err := strconv.ParseUint(idPart, 10, 32)

	if err != nil || id == 0 {
		return "", 0, errors.New("invalid listing reference id")
	}

	return targetType, uint(id), nil
}
