package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/fxcalc/internal/core/domain"
)

const timeFormat = time.RFC3339Nano // Use a precise time format

// EncodeToken creates an opaque, URL-safe page token from a history cursor.
func EncodeToken(cursor domain.HistoryCursor) string {
	tokenStr := fmt.Sprintf("%s|%d", cursor.Timestamp.UTC().Format(timeFormat), cursor.ID)
	return base64.RawURLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeToken parses a token produced by EncodeToken.
func DecodeToken(token string) (domain.HistoryCursor, error) {
	decodedBytes, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return domain.HistoryCursor{}, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 2)
	if len(parts) != 2 {
		return domain.HistoryCursor{}, fmt.Errorf("invalid pagination token format (split)")
	}

	ts, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return domain.HistoryCursor{}, fmt.Errorf("invalid pagination token format (timestamp parse): %w", err)
	}
	id, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return domain.HistoryCursor{}, fmt.Errorf("invalid pagination token format (id parse): %w", err)
	}

	return domain.HistoryCursor{Timestamp: ts, ID: id}, nil
}
