package validators

import "go.mongodb.org/mongo-driver/bson"

// VisitorStateValidator matches the documents written by the mongo kvstore
// backend: one document per session scoped key.
var VisitorStateValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType":             "object",
		"required":             []string{"_id", "value", "updated_at"},
		"additionalProperties": false,
		"properties": bson.M{
			"_id": bson.M{
				"bsonType":  "string",
				"minLength": 1,
				"maxLength": 512,
			},
			"value": bson.M{
				"bsonType": "binData",
			},
			"updated_at": bson.M{
				"bsonType": "date",
			},
		},
	},
}
