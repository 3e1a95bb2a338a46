// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//  http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package mongomock

// DriverVersion is the go.mongodb.org/mongo-driver release line whose method
// sets are declared below. Update the declarations together with it.
const DriverVersion = "v1.17"

// ReferenceType names a driver handle type and the methods a fake of that
// type exposes.
type ReferenceType struct {
	Name    string
	Methods []string
}

// Has returns true if method is part of the type's method set.
func (rt ReferenceType) Has(method string) bool {
	for _, m := range rt.Methods {
		if m == method {
			return true
		}
	}
	return false
}

// The reference types. Each method set matches the corresponding interface in
// the driver package.
var (
	ClientType = ReferenceType{
		Name: "Client",
		Methods: []string{
			"Connect",
			"Database",
			"Disconnect",
			"ListDatabaseNames",
			"ListDatabases",
			"NumberSessionsInProgress",
			"Ping",
			"StartSession",
			"UseSession",
			"Watch",
		},
	}
	DatabaseType = ReferenceType{
		Name: "Database",
		Methods: []string{
			"Aggregate",
			"Client",
			"Collection",
			"CreateCollection",
			"CreateView",
			"Drop",
			"ListCollectionNames",
			"ListCollectionSpecifications",
			"ListCollections",
			"Name",
			"RunCommand",
			"RunCommandCursor",
			"Watch",
		},
	}
	CollectionType = ReferenceType{
		Name: "Collection",
		Methods: []string{
			"Aggregate",
			"BulkWrite",
			"CountDocuments",
			"Database",
			"DeleteMany",
			"DeleteOne",
			"Distinct",
			"Drop",
			"EstimatedDocumentCount",
			"Find",
			"FindOne",
			"FindOneAndDelete",
			"FindOneAndReplace",
			"FindOneAndUpdate",
			"InsertMany",
			"InsertOne",
			"Name",
			"ReplaceOne",
			"UpdateByID",
			"UpdateMany",
			"UpdateOne",
			"Watch",
		},
	}
)
