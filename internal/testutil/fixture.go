package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// BaseDumpJSON is the smallest API dump generation accepts: the classes bound to
// well-known globals, their superclasses and one enum.
const BaseDumpJSON = `{
  "Version": 1,
  "Classes": [
    {
      "Name": "Instance",
      "Superclass": "<<<ROOT>>>",
      "Tags": ["NotCreatable"],
      "Members": [
        {"MemberType": "Property", "Name": "Name", "Security": {"Read": "None", "Write": "None"},
         "ValueType": {"Category": "Primitive", "Name": "string"}},
        {"MemberType": "Property", "Name": "ClassName", "Tags": ["ReadOnly", "NotReplicated"],
         "Security": {"Read": "None", "Write": "None"}, "ValueType": {"Category": "Primitive", "Name": "string"}},
        {"MemberType": "Function", "Name": "Destroy", "Parameters": [], "Security": "None"},
        {"MemberType": "Event", "Name": "Changed", "Parameters": [{"Name": "property"}], "Security": "None"}
      ]
    },
    {
      "Name": "ServiceProvider",
      "Superclass": "Instance",
      "Tags": ["NotCreatable", "NotReplicated"],
      "Members": [
        {"MemberType": "Function", "Name": "GetService", "Parameters": [{"Name": "className"}], "Security": "None"},
        {"MemberType": "Function", "Name": "FindService", "Parameters": [{"Name": "className"}], "Security": "None"}
      ]
    },
    {
      "Name": "DataModel",
      "Superclass": "ServiceProvider",
      "Tags": ["NotCreatable"],
      "Members": [
        {"MemberType": "Property", "Name": "JobId", "Tags": ["ReadOnly"],
         "Security": {"Read": "None", "Write": "None"}, "ValueType": {"Category": "Primitive", "Name": "string"}}
      ]
    },
    {"Name": "Plugin", "Superclass": "Instance", "Tags": ["NotCreatable"], "Members": []},
    {"Name": "Script", "Superclass": "Instance", "Tags": [], "Members": [
      {"MemberType": "Property", "Name": "Disabled", "Security": {"Read": "None", "Write": "None"},
       "ValueType": {"Category": "Primitive", "Name": "bool"}}
    ]},
    {"Name": "Workspace", "Superclass": "Instance", "Tags": ["NotCreatable", "Service"], "Members": [
      {"MemberType": "Property", "Name": "Gravity", "Security": {"Read": "None", "Write": "None"},
       "ValueType": {"Category": "Primitive", "Name": "float"}}
    ]}
  ],
  "Enums": [
    {"Name": "KeyCode", "Items": [{"Name": "A", "Value": 97}, {"Name": "B", "Value": 98}]}
  ]
}`

// WriteDumpFile writes BaseDumpJSON to API-Dump.json under dir and returns its path.
func WriteDumpFile(t testing.TB, dir string) string {
	t.Helper()

	path := filepath.Join(dir, "API-Dump.json")
	if err := os.WriteFile(path, []byte(BaseDumpJSON), 0o600); err != nil {
		t.Fatalf("failed to write API dump: %v", err)
	}
	return path
}
