// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tolassert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// mockT records failures instead of failing the test.
type mockT struct {
	failed bool
}

func (m *mockT) Errorf(format string, args ...any) {
	m.failed = true
}

func TestEqualTol(t *testing.T) {
	assert.True(t, EqualTol(t, float32(1), 1.0000001, 1e-6))
	assert.True(t, EqualTol(t, 3.14, 3.1415, 0.001))

	mt := &mockT{}
	assert.False(t, EqualTol(mt, 1.0, 1.1, 0.01))
	assert.True(t, mt.failed)
}

func TestEqualTolSlice(t *testing.T) {
	assert.True(t, EqualTolSlice(t, []float32{1, 2, 3}, []float32{1, 2, 3.0000002}, 1e-6))

	assert.False(t, EqualTolSlice(&mockT{}, []float64{1, 2}, []float64{1}, 0.1))
	assert.False(t, EqualTolSlice(&mockT{}, []float64{1, 2}, []float64{1, 2.5}, 0.1))
}
