package detection_test

import (
	"testing"

	"github.com/ahmedzukhrufrao/SendSafe/pkg/detection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fastjson"
)

func TestNormalize_NotJSON(t *testing.T) {
	result, err := detection.Normalize("not json")

	assert.Nil(t, result)
	var malformed *detection.MalformedReplyError
	assert.ErrorAs(t, err, &malformed)
}

func TestNormalize_MissingFlag(t *testing.T) {
	result, err := detection.Normalize(`{"confidence":"high"}`)

	assert.Nil(t, result)
	var malformed *detection.MalformedReplyError
	assert.ErrorAs(t, err, &malformed)
}

func TestNormalize_NonBooleanFlag(t *testing.T) {
	for _, raw := range []string{
		`{"aiFlag":"true"}`,
		`{"aiFlag":1}`,
		`{"aiFlag":null}`,
	} {
		result, err := detection.Normalize(raw)
		assert.Nil(t, result, raw)
		var malformed *detection.MalformedReplyError
		assert.ErrorAs(t, err, &malformed, raw)
	}
}

func TestNormalize_DefaultsEverythingOptional(t *testing.T) {
	result, err := detection.Normalize(`{"aiFlag":true}`)

	require.NoError(t, err)
	assert.True(t, result.AIFlag)
	assert.Equal(t, detection.ConfidenceMedium, result.Confidence)
	assert.Equal(t, []string{}, result.CategoriesFound)
	assert.Equal(t, []detection.Indicator{}, result.Indicators)
	assert.Equal(t, detection.DefaultReasoning, result.Reasoning)
}

func TestNormalize_Confidence(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want detection.Confidence
	}{
		{"valid high", `{"aiFlag":true,"confidence":"high"}`, detection.ConfidenceHigh},
		{"valid low", `{"aiFlag":true,"confidence":"low"}`, detection.ConfidenceLow},
		{"uppercase normalized", `{"aiFlag":true,"confidence":"HIGH"}`, detection.ConfidenceHigh},
		{"padded normalized", `{"aiFlag":true,"confidence":" Medium "}`, detection.ConfidenceMedium},
		{"unrecognized falls back", `{"aiFlag":true,"confidence":"certain"}`, detection.ConfidenceMedium},
		{"non-string falls back", `{"aiFlag":true,"confidence":3}`, detection.ConfidenceMedium},
		{"absent falls back", `{"aiFlag":true}`, detection.ConfidenceMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := detection.Normalize(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, result.Confidence)
		})
	}
}

func TestNormalize_CategoryFiltering(t *testing.T) {
	raw := `{"aiFlag":true,"categoriesFound":["A"," B ",7,""]}`

	result, err := detection.Normalize(raw)

	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, result.CategoriesFound)
}

func TestNormalize_CategoriesNotArray(t *testing.T) {
	result, err := detection.Normalize(`{"aiFlag":true,"categoriesFound":"markdown"}`)

	require.NoError(t, err)
	assert.Equal(t, []string{}, result.CategoriesFound)
}

func TestNormalize_IndicatorFiltering(t *testing.T) {
	raw := `{"aiFlag":true,"indicators":[{"type":"X","snippet":"s"},{"snippet":"no type"}]}`

	result, err := detection.Normalize(raw)

	require.NoError(t, err)
	require.Len(t, result.Indicators, 1)
	assert.Equal(t, "X", result.Indicators[0].Type)
	assert.Equal(t, "s", result.Indicators[0].Snippet)
	assert.Equal(t, "", result.Indicators[0].Explanation)
}

func TestNormalize_IndicatorTypeTrimmedAndBlankDropped(t *testing.T) {
	raw := `{"aiFlag":true,"indicators":[{"type":"  markdown_artifact  "},{"type":"   "},{"type":7,"snippet":"x"},"not an object"]}`

	result, err := detection.Normalize(raw)

	require.NoError(t, err)
	require.Len(t, result.Indicators, 1)
	assert.Equal(t, "markdown_artifact", result.Indicators[0].Type)
}

func TestNormalize_Reasoning(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"present", `{"aiFlag":false,"reasoning":" looks human written "}`, "looks human written"},
		{"absent", `{"aiFlag":false}`, detection.DefaultReasoning},
		{"blank", `{"aiFlag":false,"reasoning":"   "}`, detection.DefaultReasoning},
		{"non-string", `{"aiFlag":false,"reasoning":42}`, detection.DefaultReasoning},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := detection.Normalize(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, result.Reasoning)
		})
	}
}

func TestNormalize_FullReply(t *testing.T) {
	raw := `{
		"aiFlag": true,
		"confidence": "high",
		"categoriesFound": ["template_placeholder", "assistant_outro"],
		"indicators": [
			{"type": "template_placeholder", "snippet": "[Your Name]", "explanation": "unresolved placeholder"},
			{"type": "assistant_outro", "snippet": "Let me know if you need anything else!", "explanation": "assistant closing"}
		],
		"reasoning": "Two literal artifacts present."
	}`

	result, err := detection.Normalize(raw)

	require.NoError(t, err)
	assert.True(t, result.AIFlag)
	assert.Equal(t, detection.ConfidenceHigh, result.Confidence)
	assert.Equal(t, []string{"template_placeholder", "assistant_outro"}, result.CategoriesFound)
	require.Len(t, result.Indicators, 2)
	assert.Equal(t, "[Your Name]", result.Indicators[0].Snippet)
	assert.Equal(t, "Two literal artifacts present.", result.Reasoning)
}

func TestNewErrorResult(t *testing.T) {
	result := detection.NewErrorResult("the model returned an unreadable reply")

	assert.False(t, result.AIFlag)
	assert.Equal(t, detection.ConfidenceLow, result.Confidence)
	assert.Empty(t, result.CategoriesFound)
	assert.Empty(t, result.Indicators)
	assert.Contains(t, result.Reasoning, "the model returned an unreadable reply")
}

func TestIsResult(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want bool
	}{
		{"valid", `{"aiFlag":true,"confidence":"high","categoriesFound":[],"indicators":[],"reasoning":"clean"}`, true},
		{"not an object", `[1,2,3]`, false},
		{"missing flag", `{"confidence":"high","categoriesFound":[],"indicators":[],"reasoning":"r"}`, false},
		{"bad confidence", `{"aiFlag":true,"confidence":"certain","categoriesFound":[],"indicators":[],"reasoning":"r"}`, false},
		{"categories not array", `{"aiFlag":true,"confidence":"low","categoriesFound":{},"indicators":[],"reasoning":"r"}`, false},
		{"indicators not array", `{"aiFlag":true,"confidence":"low","categoriesFound":[],"indicators":"x","reasoning":"r"}`, false},
		{"reasoning not string", `{"aiFlag":true,"confidence":"low","categoriesFound":[],"indicators":[],"reasoning":5}`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, err := fastjson.Parse(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, detection.IsResult(value))
		})
	}
}
