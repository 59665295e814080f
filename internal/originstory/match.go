package originstory

import "sort"

// Scoring constants. The formula is a weighted tag-overlap heuristic:
// share of required tags covered, minus anti-tag friction, plus a
// capped alignment bonus.
const (
	topN           = 3
	basePoints     = 80.0
	antiTagPenalty = 15
	alignmentBonus = 5
	alignmentCap   = 3
	disqualifyAt   = 2
	neutralScore   = 50
	backfillScore  = 40
	maxScore       = 100
)

// Recommendation is one ranked stream suggestion, carrying the stream's
// descriptive fields flattened for direct presentation.
type Recommendation struct {
	Rank            int      `json:"rank"`
	StreamID        string   `json:"stream_id"`
	Name            string   `json:"name"`
	Emoji           string   `json:"emoji"`
	MatchScore      int      `json:"match_score"`
	Pitch           string   `json:"pitch"`
	SalaryRange     string   `json:"salary_range"`
	JobGrowth       string   `json:"job_growth"`
	Difficulty      int      `json:"difficulty"`
	WorkLifeBalance int      `json:"work_life_balance"`
	DayInLife       string   `json:"day_in_life"`
	RealityCheck    string   `json:"reality_check"`
	Roadmap         []string `json:"roadmap"`
	BridgeCourses   []string `json:"bridge_courses"`
	Careers         []string `json:"careers"`
	Subjects        []string `json:"subjects"`
}

// RecommendationSet is the full engine output for one request.
type RecommendationSet struct {
	Recommendations      []Recommendation `json:"recommendations"`
	Archetypes           map[string]int   `json:"archetypes"`
	TotalStreamsAnalyzed int              `json:"total_streams_analyzed"`
}

// Engine scores user responses against an immutable stream catalog.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	catalog *Catalog
}

// NewEngine creates a matching engine over the given catalog.
func NewEngine(catalog *Catalog) *Engine {
	return &Engine{catalog: catalog}
}

// Catalog returns the engine's catalog, for stream detail lookups.
func (e *Engine) Catalog() *Catalog {
	return e.catalog
}

// scoreStream computes the 0-100 match score for a single stream.
//
// Only the user's anti-tags intersected with the stream's required tags
// matter here; the stream-level AntiTags field is deliberately not
// consulted, matching the documented behavior of the scoring model.
func scoreStream(tags, antiTags []string, stream *Stream) int {
	required := toSet(stream.RequiredTags)

	antiOverlap := 0
	for _, t := range antiTags {
		if required[t] {
			antiOverlap++
		}
	}
	// Two or more conflicts with the stream's core signals is a hard
	// disqualification, not just a penalty.
	if antiOverlap >= disqualifyAt {
		return 0
	}

	if len(required) == 0 {
		return neutralScore
	}

	positiveOverlap := 0
	for _, t := range tags {
		if required[t] {
			positiveOverlap++
		}
	}

	base := float64(positiveOverlap) / float64(len(required)) * basePoints
	penalty := antiOverlap * antiTagPenalty

	bonusTags := positiveOverlap
	if bonusTags > alignmentCap {
		bonusTags = alignmentCap
	}
	bonus := bonusTags * alignmentBonus

	score := int(base) - penalty + bonus
	if score < 0 {
		return 0
	}
	if score > maxScore {
		return maxScore
	}
	return score
}

// Recommend runs the full pipeline: tag extraction, per-stream scoring,
// ranking, backfill, and pitch generation. It always returns exactly
// min(3, catalog size) entries.
func (e *Engine) Recommend(resp *UserResponse) *RecommendationSet {
	profile := ExtractTags(resp)

	type scored struct {
		stream *Stream
		score  int
	}

	streams := e.catalog.Streams()
	candidates := make([]scored, 0, len(streams))
	for i := range streams {
		s := &streams[i]
		if score := scoreStream(profile.Tags, profile.AntiTags, s); score > 0 {
			candidates = append(candidates, scored{stream: s, score: score})
		}
	}

	// Stable sort keeps catalog order on score ties.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})
	if len(candidates) > topN {
		candidates = candidates[:topN]
	}

	results := make([]Recommendation, 0, topN)
	taken := make(map[string]bool, topN)
	for _, c := range candidates {
		results = append(results, e.buildRecommendation(len(results)+1, c.stream, c.score, resp.Interests))
		taken[c.stream.ID] = true
	}

	// Backfill: pad to three results from the catalog in declared order
	// with a fixed placeholder score, so callers always get a full set.
	if len(results) < topN {
		for i := range streams {
			s := &streams[i]
			if taken[s.ID] {
				continue
			}
			results = append(results, e.buildRecommendation(len(results)+1, s, backfillScore, resp.Interests))
			taken[s.ID] = true
			if len(results) >= topN {
				break
			}
		}
	}

	return &RecommendationSet{
		Recommendations:      results,
		Archetypes:           profile.Archetypes,
		TotalStreamsAnalyzed: len(streams),
	}
}

func (e *Engine) buildRecommendation(rank int, stream *Stream, score int, interests []string) Recommendation {
	return Recommendation{
		Rank:            rank,
		StreamID:        stream.ID,
		Name:            stream.Name,
		Emoji:           stream.Emoji,
		MatchScore:      score,
		Pitch:           GeneratePitch(stream, interests),
		SalaryRange:     stream.SalaryRange,
		JobGrowth:       stream.JobGrowth,
		Difficulty:      stream.Difficulty,
		WorkLifeBalance: stream.WorkLifeBalance,
		DayInLife:       stream.DayInLife,
		RealityCheck:    stream.RealityCheck.Message,
		Roadmap:         stream.Roadmap,
		BridgeCourses:   stream.BridgeCourses,
		Careers:         stream.Careers,
		Subjects:        stream.Subjects,
	}
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
