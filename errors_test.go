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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueError(t *testing.T) {
	t.Parallel()

	err := &ValueError{Param: "user", Value: "x#y", Code: "baduser", Message: "not a valid user reference"}
	assert.Equal(t, `parameter "user": not a valid user reference (value "x#y")`, err.Error())
	assert.Equal(t, 400, err.HTTPStatus())
	assert.ErrorIs(t, err, ErrValidation)

	// Without a message the code stands in; without a value it is omitted.
	err = &ValueError{Param: "user", Code: "missingparam"}
	assert.Equal(t, `parameter "user": missingparam`, err.Error())
}

func TestMultiError(t *testing.T) {
	t.Parallel()

	var multi MultiError
	assert.False(t, multi.HasErrors())
	require.NoError(t, multi.ErrorOrNil())

	first := &ValueError{Param: "a", Code: "baduser"}
	multi.Add(first)
	assert.True(t, multi.HasErrors())

	// A single failure surfaces as the plain *ValueError.
	err := multi.ErrorOrNil()
	var verr *ValueError
	require.ErrorAs(t, err, &verr)
	assert.Same(t, first, verr)

	multi.Add(&ValueError{Param: "b", Code: "missingparam"})
	err = multi.ErrorOrNil()
	var merr *MultiError
	require.ErrorAs(t, err, &merr)
	assert.Len(t, merr.Errors, 2)
	assert.Contains(t, err.Error(), "2 validation failures")
	assert.Equal(t, 400, merr.HTTPStatus())

	// errors.Is finds both the sentinel and individual failures.
	assert.ErrorIs(t, err, ErrValidation)
	assert.True(t, errors.Is(err, first))
}
