package audit_log

import (
	"encoding/json"
	"fmt"
)

// SerializeData serializa o payload em JSON; se falhar, usa %+v.
func SerializeData(data interface{}) string {
	if data == nil {
		return ""
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Sprintf("%+v", data)
	}

	return string(raw)
}
