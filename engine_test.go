// Copyright 2026 The Paramdef Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package paramdef

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rejectDef fails every value with the prefix "bad"; other values pass
// through uppercased so tests can observe typed results.
type rejectDef struct{}

func (rejectDef) Validate(_ context.Context, name, value string, _ *Settings) (any, error) {
	if strings.HasPrefix(value, "bad") {
		return nil, &ValueError{Param: name, Value: value, Code: "badvalue", Message: "rejected"}
	}
	return strings.ToUpper(value), nil
}

func (rejectDef) NormalizeSettings(*Settings) error  { return nil }
func (rejectDef) ParamInfo(*Settings) map[string]any { return map[string]any{"type": "reject"} }
func (rejectDef) HelpInfo(*Settings) string          { return "Anything not prefixed with bad" }

// brokenDef simulates a collaborator I/O failure.
type brokenDef struct{ err error }

func (d brokenDef) Validate(context.Context, string, string, *Settings) (any, error) {
	return nil, d.err
}

func (brokenDef) NormalizeSettings(*Settings) error  { return nil }
func (brokenDef) ParamInfo(*Settings) map[string]any { return nil }
func (brokenDef) HelpInfo(*Settings) string          { return "" }

func testSchema(params ...Param) *Schema {
	return &Schema{Params: params}
}

func TestNew_InvalidConfig(t *testing.T) {
	t.Parallel()

	_, err := New(WithDelimiter(""))
	require.ErrorIs(t, err, ErrEmptyDelimiter)

	_, err = New(WithMaxValues(0))
	require.ErrorIs(t, err, ErrMaxValuesRange)

	assert.Panics(t, func() { MustNew(WithMaxValues(-1)) })
}

func TestRegister(t *testing.T) {
	t.Parallel()
	e := MustNew()

	require.ErrorIs(t, e.Register("", rejectDef{}), ErrEmptyTypeName)
	require.ErrorIs(t, e.Register("reject", nil), ErrNilTypeDef)
	require.NoError(t, e.Register("reject", rejectDef{}))
	require.ErrorIs(t, e.Register("reject", rejectDef{}), ErrDuplicateType)

	// The builtin string type is pre-registered.
	require.ErrorIs(t, e.Register("string", rejectDef{}), ErrDuplicateType)
}

func TestNormalizeSchema_Errors(t *testing.T) {
	t.Parallel()
	e := MustNew()

	require.ErrorIs(t, e.NormalizeSchema(nil), ErrNilSchema)

	var verr *ValueError
	err := e.NormalizeSchema(testSchema(Param{Name: "p", Settings: Settings{Type: "nope"}}))
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, CodeUnknownType, verr.Code)

	err = e.NormalizeSchema(testSchema(Param{Settings: Settings{Type: "string"}}))
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, CodeBadSchema, verr.Code)
}

func TestValidate_SingleValue(t *testing.T) {
	t.Parallel()
	e := MustNew()
	require.NoError(t, e.Register("reject", rejectDef{}))

	schema := testSchema(
		Param{Name: "title", Settings: Settings{Type: "reject", Required: true}},
		Param{Name: "note", Settings: Settings{Type: "string", Default: "none"}},
		Param{Name: "opt", Settings: Settings{Type: "string"}},
	)
	require.NoError(t, e.NormalizeSchema(schema))

	values, err := e.Validate(context.Background(), schema, map[string][]string{"title": {"hello"}})
	require.NoError(t, err)
	assert.Equal(t, "HELLO", values["title"])
	assert.Equal(t, "none", values["note"], "default substituted for absent parameter")
	_, ok := values["opt"]
	assert.False(t, ok, "absent optional parameter without default is omitted")
}

func TestValidate_RequiredMissing(t *testing.T) {
	t.Parallel()
	e := MustNew()
	schema := testSchema(Param{Name: "title", Settings: Settings{Type: "string", Required: true}})

	_, err := e.Validate(context.Background(), schema, nil)
	var verr *ValueError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, CodeMissingParam, verr.Code)
	assert.Equal(t, "title", verr.Param)
}

func TestValidate_NotMulti(t *testing.T) {
	t.Parallel()
	e := MustNew()
	schema := testSchema(Param{Name: "title", Settings: Settings{Type: "string"}})

	_, err := e.Validate(context.Background(), schema, map[string][]string{"title": {"a", "b"}})
	var verr *ValueError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, CodeNotMulti, verr.Code)

	// A delimiter inside a single-value parameter stays literal.
	values, err := e.Validate(context.Background(), schema, map[string][]string{"title": {"a|b"}})
	require.NoError(t, err)
	assert.Equal(t, "a|b", values["title"])
}

func TestValidate_MultiValue(t *testing.T) {
	t.Parallel()
	e := MustNew()
	require.NoError(t, e.Register("reject", rejectDef{}))
	schema := testSchema(Param{Name: "tags", Settings: Settings{Type: "reject", Multi: true}})

	// Split on the delimiter.
	values, err := e.Validate(context.Background(), schema, map[string][]string{"tags": {"a|b|c"}})
	require.NoError(t, err)
	assert.Equal(t, []any{"A", "B", "C"}, values["tags"])

	// Or an explicit value list.
	values, err = e.Validate(context.Background(), schema, map[string][]string{"tags": {"a", "b"}})
	require.NoError(t, err)
	assert.Equal(t, []any{"A", "B"}, values["tags"])
}

func TestValidate_CustomDelimiter(t *testing.T) {
	t.Parallel()
	e := MustNew(WithDelimiter(","))
	schema := testSchema(Param{Name: "tags", Settings: Settings{Type: "string", Multi: true}})

	values, err := e.Validate(context.Background(), schema, map[string][]string{"tags": {"a,b"}})
	require.NoError(t, err)
	assert.Equal(t, []any{"a", "b"}, values["tags"])
}

func TestValidate_TooManyValues(t *testing.T) {
	t.Parallel()
	e := MustNew(WithMaxValues(2))
	schema := testSchema(Param{Name: "tags", Settings: Settings{Type: "string", Multi: true}})

	_, err := e.Validate(context.Background(), schema, map[string][]string{"tags": {"a|b|c"}})
	var verr *ValueError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, CodeTooManyValues, verr.Code)
}

func TestValidate_FirstErrorWins(t *testing.T) {
	t.Parallel()
	e := MustNew()
	require.NoError(t, e.Register("reject", rejectDef{}))
	schema := testSchema(Param{Name: "tags", Settings: Settings{Type: "reject", Multi: true}})

	_, err := e.Validate(context.Background(), schema, map[string][]string{"tags": {"badone|ok|badtwo"}})
	var verr *ValueError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "badone", verr.Value)
}

func TestValidate_AllErrors(t *testing.T) {
	t.Parallel()
	e := MustNew(WithAllErrors())
	require.NoError(t, e.Register("reject", rejectDef{}))
	schema := testSchema(
		Param{Name: "tags", Settings: Settings{Type: "reject", Multi: true}},
		Param{Name: "title", Settings: Settings{Type: "reject", Required: true}},
	)

	values, err := e.Validate(context.Background(), schema, map[string][]string{
		"tags": {"badone|ok|badtwo"},
	})
	var multi *MultiError
	require.ErrorAs(t, err, &multi)
	require.Len(t, multi.Errors, 3)
	assert.Equal(t, "badone", multi.Errors[0].Value)
	assert.Equal(t, "badtwo", multi.Errors[1].Value)
	assert.Equal(t, CodeMissingParam, multi.Errors[2].Code)

	// A parameter with failing values contributes no partial result.
	_, ok := values["tags"]
	assert.False(t, ok)
}

func TestValidate_CollaboratorErrorAborts(t *testing.T) {
	t.Parallel()
	broken := errors.New("backend down")
	e := MustNew(WithAllErrors())
	require.NoError(t, e.Register("broken", brokenDef{err: broken}))
	schema := testSchema(Param{Name: "p", Settings: Settings{Type: "broken"}})

	_, err := e.Validate(context.Background(), schema, map[string][]string{"p": {"x"}})
	require.ErrorIs(t, err, broken)
	assert.NotErrorIs(t, err, ErrValidation)
}

func TestValidate_AutoNormalizes(t *testing.T) {
	t.Parallel()
	e := MustNew()
	schema := testSchema(Param{Name: "title", Settings: Settings{Type: "string"}})

	// Validate normalizes an un-normalized schema on first use.
	values, err := e.Validate(context.Background(), schema, map[string][]string{"title": {"x"}})
	require.NoError(t, err)
	assert.Equal(t, "x", values["title"])
}

func TestParamInfoAndHelp(t *testing.T) {
	t.Parallel()
	e := MustNew()
	require.NoError(t, e.Register("reject", rejectDef{}))
	schema := testSchema(
		Param{Name: "title", Settings: Settings{Type: "reject", Required: true, Default: "x"}},
		Param{Name: "tags", Settings: Settings{Type: "string", Multi: true}},
	)

	info, err := e.ParamInfo(schema)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"type":     "reject",
		"multi":    false,
		"required": true,
		"default":  "x",
	}, info["title"])
	assert.Equal(t, map[string]any{
		"type":     "string",
		"multi":    true,
		"required": false,
	}, info["tags"])

	help, err := e.Help(schema)
	require.NoError(t, err)
	assert.Equal(t, "Anything not prefixed with bad", help["title"])
	assert.Equal(t, "Any string values", help["tags"])
}
