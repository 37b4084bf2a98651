package export

// documentSchema is the contract the offline app's importer relies on: every
// category key present as an array, ids and audit placeholders on every
// record. A violation here is a converter bug, never bad input data.
const documentSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["exportedAt", "data"],
  "properties": {
    "exportedAt": {"type": "string"},
    "meta": {
      "type": "object",
      "required": ["batchId"],
      "properties": {"batchId": {"type": "string"}}
    },
    "data": {
      "type": "object",
      "required": [
        "users", "animals", "brutos", "meds",
        "milk", "healthEvents", "boosters", "repro",
        "salesCheese", "buyMilk", "transMilk", "fixedCosts"
      ],
      "properties": {
        "users": {
          "type": "array",
          "minItems": 1,
          "items": {
            "type": "object",
            "required": ["id", "name"],
            "properties": {
              "id": {"type": "string", "minLength": 1},
              "name": {"type": "string"}
            }
          }
        },
        "animals": {
          "type": "array",
          "items": {
            "allOf": [{"$ref": "#/$defs/record"}],
            "required": ["arete", "name", "sexo", "extras"]
          }
        },
        "brutos": {"type": "array", "items": {"$ref": "#/$defs/record"}},
        "meds": {"type": "array", "items": {"$ref": "#/$defs/record"}},
        "milk": {
          "type": "array",
          "items": {
            "allOf": [{"$ref": "#/$defs/record"}],
            "required": ["date", "animalId", "m", "t", "total"],
            "properties": {"animalId": {"type": "string", "minLength": 1}}
          }
        },
        "healthEvents": {
          "type": "array",
          "items": {
            "allOf": [{"$ref": "#/$defs/record"}],
            "required": ["animalId", "procedure", "date"],
            "properties": {"animalId": {"type": "string", "minLength": 1}}
          }
        },
        "boosters": {
          "type": "array",
          "items": {
            "allOf": [{"$ref": "#/$defs/record"}],
            "required": ["eventId", "animalId", "refDate", "status"],
            "properties": {"status": {"const": "pending"}}
          }
        },
        "repro": {
          "type": "array",
          "items": {
            "allOf": [{"$ref": "#/$defs/record"}],
            "required": ["animalId"],
            "properties": {"animalId": {"type": "string", "minLength": 1}}
          }
        },
        "salesCheese": {"type": "array", "items": {"$ref": "#/$defs/record"}},
        "buyMilk": {"type": "array", "items": {"$ref": "#/$defs/record"}},
        "transMilk": {"type": "array", "items": {"$ref": "#/$defs/record"}},
        "fixedCosts": {"type": "array", "items": {"$ref": "#/$defs/record"}}
      }
    }
  },
  "$defs": {
    "record": {
      "type": "object",
      "required": ["id", "createdBy", "createdAt"],
      "properties": {
        "id": {"type": "string", "pattern": "^[a-z]+_import_[0-9]+$"},
        "createdBy": {"const": "user_import"},
        "createdAt": {"const": 0}
      }
    }
  }
}`
