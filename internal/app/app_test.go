package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type componentFunc func(ctx context.Context) error

func (f componentFunc) Run(ctx context.Context) error {
	return f(ctx)
}

func TestCloseAfter_Run(t *testing.T) {
	cases := []struct {
		name      string
		runErr    error
		closeErr  error
		expectErr []string
	}{
		{
			name: "clean_shutdown",
		},
		{
			name:      "component_fails",
			runErr:    errors.New("listen failed"),
			expectErr: []string{"listen failed"},
		},
		{
			name:      "close_fails",
			closeErr:  errors.New("file busy"),
			expectErr: []string{"closing bookmark store: file busy"},
		},
		{
			name:      "both_fail",
			runErr:    errors.New("listen failed"),
			closeErr:  errors.New("file busy"),
			expectErr: []string{"listen failed", "closing bookmark store: file busy"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, cancel := context.WithCancel(testContext())
			var order []string

			c := closeAfter{
				Component: componentFunc(func(ctx context.Context) error {
					cancel()
					<-ctx.Done()
					// Requests still draining after cancellation can use the store.
					order = append(order, "drained")
					return tc.runErr
				}),
				close: func() error {
					order = append(order, "closed")
					return tc.closeErr
				},
			}

			err := c.Run(ctx)

			assert.Equal(t, []string{"drained", "closed"}, order)
			if len(tc.expectErr) == 0 {
				assert.NoError(t, err)
				return
			}
			for _, want := range tc.expectErr {
				assert.ErrorContains(t, err, want)
			}
		})
	}
}
