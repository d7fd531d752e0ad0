package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tinybrowser/internal/application/usecase"
)

func TestClassifyUseCase_Classify(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewClassifyUseCase(nil, usecase.AddressDefaults{Scheme: "https"}, nil)

	c := uc.Classify(ctx, "HTTPS://user@пример.рф:8080/path")
	assert.True(t, c.IsURL)
	assert.True(t, c.HasScheme)
	assert.Equal(t, 0, c.SchemeStart)
	assert.Equal(t, 8, c.SchemeLen)
	assert.Equal(t, "HTTPS://", c.Scheme)
	assert.True(t, c.HasHost)
	assert.Equal(t, 8, c.HostStart)
	assert.Equal(t, "user@пример.рф:8080", c.Host)
	assert.Equal(t, len([]rune(c.Host)), c.HostLen)
	assert.Equal(t, "xn--e1afmkfd.xn--p1ai", c.ASCIIHost)
	assert.Equal(t, "HTTPS://user@пример.рф:8080/path", c.Normalized)

	c = uc.Classify(ctx, "example.com/docs")
	assert.True(t, c.IsURL)
	assert.False(t, c.HasScheme)
	assert.Equal(t, "example.com", c.Host)
	assert.Equal(t, "https://example.com/docs", c.Normalized)

	c = uc.Classify(ctx, "just words")
	assert.False(t, c.IsURL)
	assert.Empty(t, c.Normalized)
	assert.Empty(t, c.ASCIIHost)

	c = uc.Classify(ctx, "localhost:5173/app")
	assert.False(t, c.IsURL)
	assert.Equal(t, "http://localhost:5173/app", c.Normalized)
	assert.Equal(t, "localhost", c.ASCIIHost)

	c = uc.Classify(ctx, "john@gmail.com")
	assert.False(t, c.IsURL)
	assert.Equal(t, "john@gmail.com", c.Host)
	assert.Empty(t, c.Normalized)

	c = uc.Classify(ctx, "")
	assert.False(t, c.IsURL)
	assert.False(t, c.HasHost)
}

func TestClassifyUseCase_ClassifyBatchKeepsOrder(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewClassifyUseCase(nil, usecase.AddressDefaults{}, nil)

	texts := make([]string, 200)
	for i := range texts {
		if i%2 == 0 {
			texts[i] = fmt.Sprintf("site%d.com", i)
		} else {
			texts[i] = fmt.Sprintf("query %d", i)
		}
	}

	results, err := uc.ClassifyBatch(ctx, texts)
	require.NoError(t, err)
	require.Len(t, results, len(texts))
	for i, c := range results {
		assert.Equal(t, texts[i], c.Input)
		assert.Equal(t, i%2 == 0, c.IsURL, texts[i])
	}
}

func TestClassifyUseCase_ClassifyBatchCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(testContext())
	cancel()

	uc := usecase.NewClassifyUseCase(nil, usecase.AddressDefaults{}, nil)
	results, err := uc.ClassifyBatch(ctx, []string{"a.com", "b.com"})
	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, results)
}

func TestClassifyUseCase_ClassifyBatchEmpty(t *testing.T) {
	uc := usecase.NewClassifyUseCase(nil, usecase.AddressDefaults{}, nil)
	results, err := uc.ClassifyBatch(testContext(), nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}
