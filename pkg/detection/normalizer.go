package detection

import (
	"strings"

	"github.com/valyala/fastjson"
)

var parserPool fastjson.ParserPool

// Normalize parses the model's raw reply into a Result. The reply is
// untrusted: only the aiFlag field is required, every other field is
// defaulted rather than rejected so an off-format reply never fails the
// request. The two fatal conditions are unparseable JSON and a missing or
// non-boolean aiFlag, both reported as *MalformedReplyError.
func Normalize(raw string) (*Result, error) {
	parser := parserPool.Get()
	defer parserPool.Put(parser)

	value, err := parser.Parse(raw)
	if err != nil {
		return nil, &MalformedReplyError{Reason: "reply is not valid JSON", Err: err}
	}

	flag := value.Get("aiFlag")
	if flag == nil || (flag.Type() != fastjson.TypeTrue && flag.Type() != fastjson.TypeFalse) {
		return nil, &MalformedReplyError{Reason: "missing or non-boolean aiFlag field"}
	}

	result := &Result{
		AIFlag:          flag.Type() == fastjson.TypeTrue,
		Confidence:      normalizeConfidence(value.Get("confidence")),
		CategoriesFound: normalizeCategories(value.Get("categoriesFound")),
		Indicators:      normalizeIndicators(value.Get("indicators")),
		Reasoning:       normalizeReasoning(value.Get("reasoning")),
	}

	return result, nil
}

func normalizeConfidence(value *fastjson.Value) Confidence {
	if value == nil || value.Type() != fastjson.TypeString {
		return ConfidenceMedium
	}
	switch Confidence(strings.ToLower(strings.TrimSpace(string(value.GetStringBytes())))) {
	case ConfidenceLow:
		return ConfidenceLow
	case ConfidenceMedium:
		return ConfidenceMedium
	case ConfidenceHigh:
		return ConfidenceHigh
	default:
		return ConfidenceMedium
	}
}

func normalizeCategories(value *fastjson.Value) []string {
	categories := []string{}
	if value == nil || value.Type() != fastjson.TypeArray {
		return categories
	}
	for _, item := range value.GetArray() {
		if item.Type() != fastjson.TypeString {
			continue
		}
		category := strings.TrimSpace(string(item.GetStringBytes()))
		if category == "" {
			continue
		}
		categories = append(categories, category)
	}
	return categories
}

func normalizeIndicators(value *fastjson.Value) []Indicator {
	indicators := []Indicator{}
	if value == nil || value.Type() != fastjson.TypeArray {
		return indicators
	}
	for _, item := range value.GetArray() {
		if item.Type() != fastjson.TypeObject {
			continue
		}
		// an indicator without a category is evidence of nothing: drop it
		indicatorType := stringField(item, "type")
		if strings.TrimSpace(indicatorType) == "" {
			continue
		}
		indicators = append(indicators, Indicator{
			Type:        strings.TrimSpace(indicatorType),
			Snippet:     stringField(item, "snippet"),
			Explanation: stringField(item, "explanation"),
		})
	}
	return indicators
}

func normalizeReasoning(value *fastjson.Value) string {
	if value == nil || value.Type() != fastjson.TypeString {
		return DefaultReasoning
	}
	reasoning := strings.TrimSpace(string(value.GetStringBytes()))
	if reasoning == "" {
		return DefaultReasoning
	}
	return reasoning
}

func stringField(value *fastjson.Value, name string) string {
	field := value.Get(name)
	if field == nil || field.Type() != fastjson.TypeString {
		return ""
	}
	return string(field.GetStringBytes())
}

// IsResult structurally validates an arbitrary parsed value against the
// Result shape. It is a defensive check for trust boundaries, not a parser:
// Normalize remains the normal path.
func IsResult(value *fastjson.Value) bool {
	if value == nil || value.Type() != fastjson.TypeObject {
		return false
	}
	flag := value.Get("aiFlag")
	if flag == nil || (flag.Type() != fastjson.TypeTrue && flag.Type() != fastjson.TypeFalse) {
		return false
	}
	confidence := value.Get("confidence")
	if confidence == nil || confidence.Type() != fastjson.TypeString {
		return false
	}
	switch Confidence(string(confidence.GetStringBytes())) {
	case ConfidenceLow, ConfidenceMedium, ConfidenceHigh:
	default:
		return false
	}
	if categories := value.Get("categoriesFound"); categories == nil || categories.Type() != fastjson.TypeArray {
		return false
	}
	if indicators := value.Get("indicators"); indicators == nil || indicators.Type() != fastjson.TypeArray {
		return false
	}
	if reasoning := value.Get("reasoning"); reasoning == nil || reasoning.Type() != fastjson.TypeString {
		return false
	}
	return true
}
