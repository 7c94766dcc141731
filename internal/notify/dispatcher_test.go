package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AutoServeHQ/service-scheduler/internal/dto"
)

func TestDispatchDropsWhenQueueFull(t *testing.T) {
	// No worker draining the queue, so the second event hits a full channel.
	d := &Dispatcher{queue: make(chan event, 1)}

	d.AppointmentBooked(dto.AppointmentDetail{ID: 1})
	d.AppointmentCancelled(dto.AppointmentDetail{ID: 2})

	assert.Equal(t, 1, len(d.queue))

	ev := <-d.queue
	assert.Equal(t, kindBooked, ev.kind)
	assert.Equal(t, uint(1), ev.detail.ID)
}
