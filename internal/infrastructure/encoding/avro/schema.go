package avro

// WorkOrderSchema is the Avro schema for submitted work orders. Optional
// fields use ["null", type] unions; quantities travel as long, money as
// double.
const WorkOrderSchema = `{
	"type": "record",
	"name": "WorkOrder",
	"namespace": "com.oficina.workorder",
	"fields": [
		{"name": "id", "type": ["null", "string"], "default": null},
		{"name": "client_id", "type": ["null", "string"], "default": null},
		{"name": "vehicle_id", "type": ["null", "string"], "default": null},

		{"name": "services", "type": ["null", {
			"type": "array",
			"items": {
				"type": "record",
				"name": "ServiceLine",
				"fields": [
					{"name": "service_id", "type": ["null", "string"], "default": null},
					{"name": "name", "type": ["null", "string"], "default": null},
					{"name": "quantity", "type": ["null", "long"], "default": null},
					{"name": "unit_price", "type": ["null", "double"], "default": null}
				]
			}
		}], "default": null},

		{"name": "parts", "type": ["null", {
			"type": "array",
			"items": {
				"type": "record",
				"name": "PartLine",
				"fields": [
					{"name": "part_id", "type": ["null", "string"], "default": null},
					{"name": "name", "type": ["null", "string"], "default": null},
					{"name": "quantity", "type": ["null", "long"], "default": null},
					{"name": "unit_price", "type": ["null", "double"], "default": null},
					{"name": "stock_ceiling", "type": ["null", "long"], "default": null}
				]
			}
		}], "default": null},

		{"name": "observations", "type": ["null", "string"], "default": null},
		{"name": "labor_cost", "type": ["null", "double"], "default": null},
		{"name": "discount", "type": ["null", "double"], "default": null},
		{"name": "total", "type": ["null", "double"], "default": null},
		{"name": "status", "type": ["null", "string"], "default": null},
		{"name": "created_at", "type": ["null", "string"], "default": null},
		{"name": "updated_at", "type": ["null", "string"], "default": null}
	]
}`
