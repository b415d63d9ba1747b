package interview

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func tomorrowStr() string {
	return time.Now().AddDate(0, 0, 1).Format("2006-01-02")
}

func yesterdayStr() string {
	return time.Now().AddDate(0, 0, -1).Format("2006-01-02")
}

func TestCreateNotificationRequest_Validate_SlotCount(t *testing.T) {
	base := func(slots []TimeSlot) CreateNotificationRequest {
		return CreateNotificationRequest{
			CandidateID: "0198a3c1-5b2f-7c4d-8e9f-1a2b3c4d5e6f",
			TimeSlots:   slots,
		}
	}

	slot := TimeSlot{Date: tomorrowStr(), Time: "09.00 - 09.30"}

	// zero slots rejected
	req := base(nil)
	assert.Error(t, req.Validate())

	// four slots rejected
	req = base([]TimeSlot{slot, slot, slot, slot})
	assert.Error(t, req.Validate())

	// one to three slots accepted
	for n := 1; n <= 3; n++ {
		slots := make([]TimeSlot, n)
		for i := range slots {
			slots[i] = slot
		}
		req = base(slots)
		assert.NoError(t, req.Validate(), "expected %d slots to validate", n)
	}
}

func TestCreateNotificationRequest_Validate_SlotDates(t *testing.T) {
	req := CreateNotificationRequest{
		CandidateID: "0198a3c1-5b2f-7c4d-8e9f-1a2b3c4d5e6f",
		TimeSlots:   []TimeSlot{{Date: yesterdayStr(), Time: "09.00 - 09.30"}},
	}
	assert.Error(t, req.Validate(), "past date must be rejected")

	req.TimeSlots = []TimeSlot{{Date: time.Now().Format("2006-01-02"), Time: "09.00 - 09.30"}}
	assert.Error(t, req.Validate(), "today must be rejected, slots start tomorrow")

	req.TimeSlots = []TimeSlot{{Date: "", Time: "09.00 - 09.30"}}
	assert.Error(t, req.Validate(), "empty date must be rejected")

	req.TimeSlots = []TimeSlot{{Date: tomorrowStr(), Time: ""}}
	assert.Error(t, req.Validate(), "empty time must be rejected")

	req.TimeSlots = []TimeSlot{{Date: "10-01-2025", Time: "09.00 - 09.30"}}
	assert.Error(t, req.Validate(), "wrong date format must be rejected")

	req.TimeSlots = []TimeSlot{{Date: tomorrowStr(), Time: "9am to 10am"}}
	assert.Error(t, req.Validate(), "wrong time format must be rejected")
}

func TestTimeSlots_Contains(t *testing.T) {
	slots := TimeSlots{
		{Date: "2025-01-10", Time: "09.00 - 09.30"},
		{Date: "2025-01-11", Time: "14.00 - 14.30"},
	}

	assert.True(t, slots.Contains(TimeSlot{Date: "2025-01-11", Time: "14.00 - 14.30"}))
	assert.False(t, slots.Contains(TimeSlot{Date: "2025-01-11", Time: "09.00 - 09.30"}))
	assert.False(t, slots.Contains(TimeSlot{Date: "2025-01-12", Time: "14.00 - 14.30"}))
}

func TestNotification_LatestSlotDate(t *testing.T) {
	n := Notification{TimeSlots: TimeSlots{
		{Date: "2025-01-10", Time: "09.00 - 09.30"},
		{Date: "2025-01-15", Time: "14.00 - 14.30"},
		{Date: "2025-01-12", Time: "10.00 - 10.30"},
	}}

	latest, ok := n.LatestSlotDate()
	assert.True(t, ok)
	assert.Equal(t, "2025-01-15", latest.Format("2006-01-02"))

	empty := Notification{}
	_, ok = empty.LatestSlotDate()
	assert.False(t, ok)
}
