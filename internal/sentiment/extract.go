package sentiment

import (
	"strings"

	"github.com/valyala/fastjson"
)

// Result is a normalized sentiment prediction.
type Result struct {
	Label string
	Score float64
}

// extractLabelScore pulls a (label, score) pair out of one JSON document,
// tolerating the response shapes observed across inference providers:
//
//	{"label": "...", "score": 0.9}
//	{"data": [{"label": "...", "score": 0.9}]} or {"data": ["label"]}
//	[{"label": "...", "score": 0.9}] or ["label"]
//	{"output": {"label": "...", "score": 0.9}} or {"output": "label"}
//
// The first matching shape wins; score defaults to 0.0 when absent.
func extractLabelScore(doc []byte) (Result, bool) {
	var p fastjson.Parser
	v, err := p.ParseBytes(doc)
	if err != nil {
		return Result{}, false
	}

	switch v.Type() {
	case fastjson.TypeObject:
		if res, ok := labelScoreFromObject(v); ok {
			return res, true
		}
		if data := v.Get("data"); data != nil && data.Type() == fastjson.TypeArray {
			if res, ok := labelScoreFromFirst(data); ok {
				return res, true
			}
		}
		if output := v.Get("output"); output != nil {
			if res, ok := labelScoreFromValue(output); ok {
				return res, true
			}
		}
	case fastjson.TypeArray:
		if res, ok := labelScoreFromFirst(v); ok {
			return res, true
		}
	}

	return Result{}, false
}

// labelScoreFromFirst extracts from the first element of a JSON array.
func labelScoreFromFirst(arr *fastjson.Value) (Result, bool) {
	items := arr.GetArray()
	if len(items) == 0 {
		return Result{}, false
	}
	return labelScoreFromValue(items[0])
}

// labelScoreFromValue extracts from a value that is either an object carrying
// label/score fields or a bare string label.
func labelScoreFromValue(v *fastjson.Value) (Result, bool) {
	switch v.Type() {
	case fastjson.TypeObject:
		return labelScoreFromObject(v)
	case fastjson.TypeString:
		label := string(v.GetStringBytes())
		if strings.TrimSpace(label) == "" {
			return Result{}, false
		}
		return Result{Label: label}, true
	}
	return Result{}, false
}

// labelScoreFromObject reads the label/score fields of a JSON object.
// Blank and whitespace-only labels count as missing.
func labelScoreFromObject(v *fastjson.Value) (Result, bool) {
	label := string(v.GetStringBytes("label"))
	if strings.TrimSpace(label) == "" {
		return Result{}, false
	}
	return Result{Label: label, Score: v.GetFloat64("score")}, true
}
