package models

// TrafficLaw holds the structure for the traffic_laws collection in mongo.
// Laws are immutable reference data; a reviewed case carries its own snapshot
// of the law so later catalog edits never change the recorded fine.
type TrafficLaw struct {
	ID          string  `json:"id" bson:"id"`
	Article     string  `json:"article" bson:"article"`
	Number      string  `json:"number" bson:"number"`
	Description string  `json:"description" bson:"description"`
	FineAmount  float64 `json:"fine_amount" bson:"fine_amount"`
}
