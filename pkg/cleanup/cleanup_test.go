package cleanup_test

import (
	"errors"
	"testing"

	"github.com/JuliPapp/Redimfinal-sub000/pkg/cleanup"
	"github.com/stretchr/testify/assert"
)

func TestCleanUpReverseOrder(t *testing.T) {
	var order []string
	cleanup.Register(&cleanup.Job{Name: "pool", F: func() error {
		order = append(order, "pool")
		return nil
	}})
	cleanup.Register(&cleanup.Job{Name: "server", F: func() error {
		order = append(order, "server")
		return errors.New("already closed")
	}})
	cleanup.CleanUp()
	assert.Equal(t, []string{"server", "pool"}, order)

	cleanup.CleanUp()
	assert.Len(t, order, 2)
}
