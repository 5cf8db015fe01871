package orchestrator

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	"aimaturity/internal/model"
)

// Fingerprint derives the cache key for an assessment input. Answers are
// serialized in sorted question-id order so that two submissions with the
// same content hash identically regardless of map iteration or the order
// the answers arrived in.
func Fingerprint(data model.AssessmentData) string {
	ids := make([]string, 0, len(data.Responses))
	for id := range data.Responses {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var b strings.Builder
	for _, id := range ids {
		b.WriteString(id)
		b.WriteByte('=')
		b.WriteString(answerValue(data.Responses[id]))
		b.WriteByte(';')
	}

	sum := sha256.Sum256([]byte(b.String()))
	return data.OrganizationID + ":" + hex.EncodeToString(sum[:])
}

func answerValue(a model.Answer) string {
	switch {
	case a.Scale != nil:
		return fmt.Sprintf("scale:%d", *a.Scale)
	case a.Bool != nil:
		return fmt.Sprintf("bool:%t", *a.Bool)
	case a.Choice != "":
		return "choice:" + a.Choice
	default:
		return "text:" + a.Text
	}
}
