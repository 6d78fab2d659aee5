package mapper

import (
	"encoding/json"

	"gorm.io/datatypes"
)

func tagsToJSON(tags []string) datatypes.JSON {
	if tags == nil {
		tags = []string{}
	}
	data, _ := json.Marshal(tags)
	return datatypes.JSON(data)
}

func tagsFromJSON(data datatypes.JSON) []string {
	tags := []string{}
	if len(data) == 0 {
		return tags
	}
	_ = json.Unmarshal(data, &tags)
	return tags
}
