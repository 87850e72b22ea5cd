package signupfeed

import (
	"errors"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
)

func TestCloseRabbitJoinsErrors(t *testing.T) {
	errConn := errors.New("connection reset")

	var order []string
	err := closeRabbit(
		func() error { order = append(order, "channel"); return amqp.ErrClosed },
		func() error { order = append(order, "conn"); return errConn },
	)

	assert.ErrorIs(t, err, amqp.ErrClosed)
	assert.ErrorIs(t, err, errConn)
	assert.Equal(t, []string{"channel", "conn"}, order)
}

func TestCloseRabbitNoErrors(t *testing.T) {
	assert.NoError(t, closeRabbit(func() error { return nil }))
	assert.NoError(t, (&RabbitPublisher{}).Close())
}
