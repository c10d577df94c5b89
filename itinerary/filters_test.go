package itinerary

import (
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

// The mutation filter must conjoin id and owner in a single document.
// Anything weaker reopens the check-then-act window and lets a caller
// distinguish "absent" from "not mine".
func TestOwnedFilterConjoinsOwner(t *testing.T) {
	got := owned("trip-1", "user-a")
	want := bson.M{"itineraryid": "trip-1", "user_id": "user-a"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("owned() = %v, want %v", got, want)
	}
	if len(got) != 2 {
		t.Errorf("owned() must carry exactly id and owner, got %v", got)
	}
}

func TestOwnedOrPublicFilter(t *testing.T) {
	got := ownedOrPublic("trip-1", "user-a")
	want := bson.M{
		"itineraryid": "trip-1",
		"$or": []bson.M{
			{"user_id": "user-a"},
			{"is_public": true},
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ownedOrPublic() = %v, want %v", got, want)
	}
}

// An anonymous caller has an empty id; the filter must still admit
// public itineraries and nothing else.
func TestOwnedOrPublicFilterAnonymous(t *testing.T) {
	got := ownedOrPublic("trip-1", "")
	want := bson.M{
		"itineraryid": "trip-1",
		"$or": []bson.M{
			{"user_id": ""},
			{"is_public": true},
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ownedOrPublic() = %v, want %v", got, want)
	}
}
