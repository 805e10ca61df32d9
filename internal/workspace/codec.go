package workspace

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/rchalamala/beavered/pkg/model"
)

// Share codes are base64 over a flat JSON array of per-course quadruples:
// [courseId, enabled, locked, sectionId, ...]. The layout is kept exactly
// interoperable with the web planner's export format, including a JSON
// null for "no section".

// ExportCode encodes a request list as a share code.
func ExportCode(courses []model.CourseRequest) (string, error) {
	flat := make([]any, 0, len(courses)*4)
	for _, short := range model.Shorten(courses) {
		var section any
		if short.Section != model.NoSection {
			section = short.Section
		}
		flat = append(flat, short.CourseID, short.Enabled, short.Locked, section)
	}
	raw, err := json.Marshal(flat)
	if err != nil {
		return "", fmt.Errorf("encode workspace code: %w", err)
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

// ImportCode decodes a share code back into short-form requests. Codes
// referencing courses from a different term's catalog still decode here;
// resolution against the catalog (and orphan dropping) happens in
// Catalog.Lengthen.
func ImportCode(code string) ([]model.ShortRequest, error) {
	raw, err := base64.StdEncoding.DecodeString(code)
	if err != nil {
		return nil, fmt.Errorf("decode workspace code: %w", err)
	}
	var flat []any
	if err := json.Unmarshal(raw, &flat); err != nil {
		return nil, fmt.Errorf("decode workspace code: %w", err)
	}

	short := make([]model.ShortRequest, 0, len(flat)/4)
	for i := 0; i*4 < len(flat); i++ {
		entry, err := decodeQuad(flat[i*4:])
		if err != nil {
			return nil, fmt.Errorf("workspace code entry %d: %w", i, err)
		}
		short = append(short, entry)
	}
	return short, nil
}

func decodeQuad(flat []any) (model.ShortRequest, error) {
	if len(flat) < 4 {
		return model.ShortRequest{}, fmt.Errorf("truncated entry")
	}
	id, ok := flat[0].(float64)
	if !ok || id < 0 {
		return model.ShortRequest{}, fmt.Errorf("bad course id %v", flat[0])
	}
	enabled, ok := flat[1].(bool)
	if !ok {
		return model.ShortRequest{}, fmt.Errorf("bad enabled flag %v", flat[1])
	}
	locked, ok := flat[2].(bool)
	if !ok {
		return model.ShortRequest{}, fmt.Errorf("bad locked flag %v", flat[2])
	}
	section := model.NoSection
	if flat[3] != nil {
		f, ok := flat[3].(float64)
		if !ok {
			return model.ShortRequest{}, fmt.Errorf("bad section index %v", flat[3])
		}
		section = int(f)
	}
	return model.ShortRequest{
		CourseID: model.CourseID(id),
		Section:  section,
		Enabled:  enabled,
		Locked:   locked,
	}, nil
}
