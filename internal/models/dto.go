package models

// Store-result DTOs. The old Mongo backend serialized the driver's raw
// insert/update/delete results straight back to callers, and the frontend
// reads these fields; the shapes are kept on the wire.

type InsertResult struct {
	InsertedID   uint `json:"insertedId"`
	Acknowledged bool `json:"acknowledged"`
}

type UpdateResult struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
	UpsertedID    *uint `json:"upsertedId,omitempty"`
}

type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
	Acknowledged bool  `json:"acknowledged"`
}
