package nav

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRouter_Redirect(t *testing.T) {
	r := NewRouter(HomePath)
	assert.False(t, r.OnLogin())

	r.Redirect(context.Background(), LoginPath)
	assert.True(t, r.OnLogin())
	assert.Equal(t, []string{HomePath, LoginPath}, r.History())
}

func TestRouter_RedirectToCurrentIsNoop(t *testing.T) {
	r := NewRouter(LoginPath)

	r.Redirect(context.Background(), LoginPath)
	r.Redirect(context.Background(), LoginPath)

	assert.Equal(t, LoginPath, r.Current())
	assert.Equal(t, []string{LoginPath}, r.History())
}

func TestRouter_ConcurrentRedirects(t *testing.T) {
	r := NewRouter(HomePath)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Redirect(context.Background(), LoginPath)
		}()
	}
	wg.Wait()

	assert.Equal(t, []string{HomePath, LoginPath}, r.History())
}

func TestFunc(t *testing.T) {
	var got string
	var rd Redirector = Func(func(_ context.Context, p string) { got = p })
	rd.Redirect(context.Background(), LoginPath)
	assert.Equal(t, LoginPath, got)
}
