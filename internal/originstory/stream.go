// Package originstory implements the stream/major recommendation engine:
// a rule-based psychometric matcher that maps a student's preferences,
// strengths, and anti-preferences onto a ranked list of academic streams.
package originstory

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed streams.json
var streamsJSON []byte

//go:embed streams.schema.json
var streamsSchemaJSON []byte

// RealityCheck is the honest-expectations blurb attached to a stream.
type RealityCheck struct {
	MathRequired bool   `json:"math_required"`
	Message      string `json:"message"`
}

// Stream is one candidate academic/career path. Instances are immutable
// reference data; the catalog is built once at startup and shared.
type Stream struct {
	ID              string             `json:"id"`
	Name            string             `json:"name"`
	Emoji           string             `json:"emoji"`
	Category        string             `json:"category"`
	RequiredTags    []string           `json:"required_tags"`
	AntiTags        []string           `json:"anti_tags"`
	Weights         map[string]float64 `json:"weights"`
	Subjects        []string           `json:"subjects"`
	Careers         []string           `json:"careers"`
	SalaryRange     string             `json:"salary_range"`
	JobGrowth       string             `json:"job_growth"`
	Difficulty      int                `json:"difficulty"`
	DropoutRate     string             `json:"dropout_rate"`
	WorkLifeBalance int                `json:"work_life_balance"`
	DayInLife       string             `json:"day_in_life"`
	RealityCheck    RealityCheck       `json:"reality_check"`
	Roadmap         []string           `json:"roadmap"`
	BridgeCourses   []string           `json:"bridge_courses"`
}

// Catalog holds the ordered set of candidate streams. Order matters:
// score ties and backfill both follow declaration order.
type Catalog struct {
	streams []Stream
	byID    map[string]int
}

// CatalogError reports a catalog that failed schema validation at load time.
type CatalogError struct {
	Problems []string
}

func (e *CatalogError) Error() string {
	return fmt.Sprintf("stream catalog invalid: %s", strings.Join(e.Problems, "; "))
}

// LoadCatalog parses and validates the embedded stream catalog.
// Validation happens exactly once here; everything downstream may trust
// the shapes without re-checking.
func LoadCatalog() (*Catalog, error) {
	return loadCatalog(streamsJSON)
}

func loadCatalog(data []byte) (*Catalog, error) {
	schema := gojsonschema.NewBytesLoader(streamsSchemaJSON)
	document := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schema, document)
	if err != nil {
		return nil, fmt.Errorf("failed to validate stream catalog: %w", err)
	}
	if !result.Valid() {
		ce := &CatalogError{}
		for _, desc := range result.Errors() {
			ce.Problems = append(ce.Problems, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
		}
		return nil, ce
	}

	var streams []Stream
	if err := json.Unmarshal(data, &streams); err != nil {
		return nil, fmt.Errorf("failed to parse stream catalog: %w", err)
	}

	byID := make(map[string]int, len(streams))
	for i, s := range streams {
		if _, dup := byID[s.ID]; dup {
			return nil, &CatalogError{Problems: []string{fmt.Sprintf("duplicate stream id %q", s.ID)}}
		}
		byID[s.ID] = i
	}

	return &Catalog{streams: streams, byID: byID}, nil
}

// NewCatalog builds a catalog from explicit streams. Used by tests that
// need synthetic catalogs; production code loads the embedded one.
func NewCatalog(streams []Stream) *Catalog {
	byID := make(map[string]int, len(streams))
	for i, s := range streams {
		byID[s.ID] = i
	}
	return &Catalog{streams: streams, byID: byID}
}

// Len returns the number of streams in the catalog.
func (c *Catalog) Len() int {
	return len(c.streams)
}

// Streams returns the catalog in declaration order.
func (c *Catalog) Streams() []Stream {
	return c.streams
}

// Get looks up a stream by its key. The second return value is false
// when the key is unknown; this is the catalog's only failure mode.
func (c *Catalog) Get(streamID string) (*Stream, bool) {
	i, ok := c.byID[streamID]
	if !ok {
		return nil, false
	}
	return &c.streams[i], true
}
