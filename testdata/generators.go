package testdata

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

var relationships = []string{
	"SPOUSE", "SIBLING", "PARENT", "COUSIN", "FRIEND", "COLLEAGUE",
}

var uniqueNameCounter int64

// UniqueName returns a name that will not collide with one generated earlier in this
// run or in a previous run, so repeated CRUD tests against a shared deployment do not
// trip over their own records.
func UniqueName(prefix string) string {
	return fmt.Sprintf("%s_%d_%d", prefix, time.Now().Unix(), atomic.AddInt64(&uniqueNameCounter, 1))
}

// NigerianMobileNumber returns a plausible 11-digit mobile number.
func NigerianMobileNumber() string {
	return gofakeit.Numerify("080########")
}

// BVNNumber returns a plausible 11-digit bank verification number.
func BVNNumber() string {
	return gofakeit.Numerify("228########")
}

// NewEmergencyContact generates a full emergency contact with random person data.
func NewEmergencyContact() EmergencyContact {
	return EmergencyContact{
		FirstName:    gofakeit.FirstName(),
		Surname:      gofakeit.LastName(),
		OtherName:    ldvalue.NewOptionalString(gofakeit.FirstName()),
		MobileNumber: ldvalue.NewOptionalString(NigerianMobileNumber()),
		WorkNumber:   ldvalue.NewOptionalString(NigerianMobileNumber()),
		Relationship: ldvalue.NewOptionalString(gofakeit.RandomString(relationships)),
		Email:        ldvalue.NewOptionalString(gofakeit.Email()),
		Location:     ldvalue.NewOptionalString(gofakeit.City()),
	}
}
