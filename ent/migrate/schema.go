// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AppointmentsColumns holds the columns for the "appointments" table.
	AppointmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "appointment_date", Type: field.TypeTime},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"SCHEDULED", "IN_PROGRESS", "COMPLETED", "CANCELLED"}, Default: "SCHEDULED"},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "appointment_type", Type: field.TypeEnum, Nullable: true, Enums: []string{"issue", "service"}},
		{Name: "parts_used", Type: field.TypeJSON, Nullable: true},
		{Name: "labor_cost", Type: field.TypeFloat64, Nullable: true},
		{Name: "total_cost", Type: field.TypeFloat64, Nullable: true},
		{Name: "employee_appointments", Type: field.TypeString},
		{Name: "issue_appointments", Type: field.TypeString, Nullable: true},
		{Name: "vehicle_appointments", Type: field.TypeString},
	}
	// AppointmentsTable holds the schema information for the "appointments" table.
	AppointmentsTable = &schema.Table{
		Name:       "appointments",
		Columns:    AppointmentsColumns,
		PrimaryKey: []*schema.Column{AppointmentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "appointments_employees_appointments",
				Columns:    []*schema.Column{AppointmentsColumns[10]},
				RefColumns: []*schema.Column{EmployeesColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "appointments_issues_appointments",
				Columns:    []*schema.Column{AppointmentsColumns[11]},
				RefColumns: []*schema.Column{IssuesColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "appointments_vehicles_appointments",
				Columns:    []*schema.Column{AppointmentsColumns[12]},
				RefColumns: []*schema.Column{VehiclesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "appointment_appointment_date",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[3]},
			},
			{
				Name:    "appointment_status",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[4]},
			},
		},
	}
	// CustomersColumns holds the columns for the "customers" table.
	CustomersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "email", Type: field.TypeString, Size: 255},
		{Name: "phone", Type: field.TypeString, Nullable: true},
		{Name: "address", Type: field.TypeString, Nullable: true},
	}
	// CustomersTable holds the schema information for the "customers" table.
	CustomersTable = &schema.Table{
		Name:       "customers",
		Columns:    CustomersColumns,
		PrimaryKey: []*schema.Column{CustomersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "customer_email",
				Unique:  true,
				Columns: []*schema.Column{CustomersColumns[4]},
			},
			{
				Name:    "customer_phone",
				Unique:  false,
				Columns: []*schema.Column{CustomersColumns[5]},
			},
		},
	}
	// EmployeesColumns holds the columns for the "employees" table.
	EmployeesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"employee", "manager", "admin"}, Default: "employee"},
		{Name: "email", Type: field.TypeString, Size: 255},
		{Name: "phone", Type: field.TypeString, Nullable: true},
	}
	// EmployeesTable holds the schema information for the "employees" table.
	EmployeesTable = &schema.Table{
		Name:       "employees",
		Columns:    EmployeesColumns,
		PrimaryKey: []*schema.Column{EmployeesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "employee_email",
				Unique:  true,
				Columns: []*schema.Column{EmployeesColumns[5]},
			},
		},
	}
	// IssuesColumns holds the columns for the "issues" table.
	IssuesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "diagnosed", "resolved"}, Default: "pending"},
		{Name: "reported_at", Type: field.TypeTime},
		{Name: "resolved_at", Type: field.TypeTime, Nullable: true},
		{Name: "vehicle_issues", Type: field.TypeString},
	}
	// IssuesTable holds the schema information for the "issues" table.
	IssuesTable = &schema.Table{
		Name:       "issues",
		Columns:    IssuesColumns,
		PrimaryKey: []*schema.Column{IssuesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "issues_vehicles_issues",
				Columns:    []*schema.Column{IssuesColumns[7]},
				RefColumns: []*schema.Column{VehiclesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "issue_status",
				Unique:  false,
				Columns: []*schema.Column{IssuesColumns[4]},
			},
		},
	}
	// NotificationsColumns holds the columns for the "notifications" table.
	NotificationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"APPOINTMENT_SCHEDULED", "APPOINTMENT_STATUS_CHANGE", "APPOINTMENT_REMINDER", "ISSUE_REPORTED"}},
		{Name: "title", Type: field.TypeString, Size: 255},
		{Name: "message", Type: field.TypeString, Size: 2048},
		{Name: "resource_type", Type: field.TypeString, Nullable: true},
		{Name: "resource_id", Type: field.TypeString, Nullable: true},
		{Name: "read", Type: field.TypeBool, Default: false},
		{Name: "read_at", Type: field.TypeTime, Nullable: true},
		{Name: "user_notifications", Type: field.TypeString},
	}
	// NotificationsTable holds the schema information for the "notifications" table.
	NotificationsTable = &schema.Table{
		Name:       "notifications",
		Columns:    NotificationsColumns,
		PrimaryKey: []*schema.Column{NotificationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "notifications_users_notifications",
				Columns:    []*schema.Column{NotificationsColumns[9]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "notification_read_user_notifications",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[7], NotificationsColumns[9]},
			},
			{
				Name:    "notification_created_at_user_notifications",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[1], NotificationsColumns[9]},
			},
			{
				Name:    "notification_created_at",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[1]},
			},
			{
				Name:    "notification_type_resource_id",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[2], NotificationsColumns[6]},
			},
		},
	}
	// PartsColumns holds the columns for the "parts" table.
	PartsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "condition", Type: field.TypeEnum, Enums: []string{"new", "used", "refurbished"}, Default: "new"},
		{Name: "price", Type: field.TypeFloat64},
		{Name: "quantity", Type: field.TypeInt, Default: 1},
		{Name: "supplier", Type: field.TypeString, Nullable: true},
	}
	// PartsTable holds the schema information for the "parts" table.
	PartsTable = &schema.Table{
		Name:       "parts",
		Columns:    PartsColumns,
		PrimaryKey: []*schema.Column{PartsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "part_name",
				Unique:  false,
				Columns: []*schema.Column{PartsColumns[3]},
			},
		},
	}
	// ServiceCatalogItemsColumns holds the columns for the "service_catalog_items" table.
	ServiceCatalogItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "price", Type: field.TypeFloat64},
		{Name: "category", Type: field.TypeEnum, Enums: []string{"Engine", "Tires", "Brakes", "Electrical", "General"}, Default: "General"},
		{Name: "is_active", Type: field.TypeBool, Default: true},
	}
	// ServiceCatalogItemsTable holds the schema information for the "service_catalog_items" table.
	ServiceCatalogItemsTable = &schema.Table{
		Name:       "service_catalog_items",
		Columns:    ServiceCatalogItemsColumns,
		PrimaryKey: []*schema.Column{ServiceCatalogItemsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "servicecatalogitem_name",
				Unique:  true,
				Columns: []*schema.Column{ServiceCatalogItemsColumns[3]},
			},
			{
				Name:    "servicecatalogitem_category",
				Unique:  false,
				Columns: []*schema.Column{ServiceCatalogItemsColumns[6]},
			},
		},
	}
	// ServiceRecordsColumns holds the columns for the "service_records" table.
	ServiceRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "services_performed", Type: field.TypeJSON, Nullable: true},
		{Name: "parts_used", Type: field.TypeJSON, Nullable: true},
		{Name: "labor_cost", Type: field.TypeFloat64},
		{Name: "total_cost", Type: field.TypeFloat64},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "in_progress", "completed"}, Default: "pending"},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "appointment_service_records", Type: field.TypeString, Nullable: true},
		{Name: "vehicle_service_records", Type: field.TypeString},
	}
	// ServiceRecordsTable holds the schema information for the "service_records" table.
	ServiceRecordsTable = &schema.Table{
		Name:       "service_records",
		Columns:    ServiceRecordsColumns,
		PrimaryKey: []*schema.Column{ServiceRecordsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "service_records_appointments_service_records",
				Columns:    []*schema.Column{ServiceRecordsColumns[11]},
				RefColumns: []*schema.Column{AppointmentsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "service_records_vehicles_service_records",
				Columns:    []*schema.Column{ServiceRecordsColumns[12]},
				RefColumns: []*schema.Column{VehiclesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "servicerecord_status",
				Unique:  false,
				Columns: []*schema.Column{ServiceRecordsColumns[9]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "email", Type: field.TypeString, Size: 255},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "email_verified", Type: field.TypeBool, Default: false},
		{Name: "enabled", Type: field.TypeBool, Default: true},
		{Name: "reset_token_hash", Type: field.TypeString, Nullable: true},
		{Name: "reset_token_expires_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_email",
				Unique:  true,
				Columns: []*schema.Column{UsersColumns[3]},
			},
		},
	}
	// VehiclesColumns holds the columns for the "vehicles" table.
	VehiclesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "make", Type: field.TypeString, Size: 255},
		{Name: "model", Type: field.TypeString, Size: 255},
		{Name: "year", Type: field.TypeInt},
		{Name: "license_plate", Type: field.TypeString, Size: 32},
		{Name: "vin", Type: field.TypeString, Size: 17},
		{Name: "mileage", Type: field.TypeInt, Nullable: true},
		{Name: "customer_vehicles", Type: field.TypeString},
	}
	// VehiclesTable holds the schema information for the "vehicles" table.
	VehiclesTable = &schema.Table{
		Name:       "vehicles",
		Columns:    VehiclesColumns,
		PrimaryKey: []*schema.Column{VehiclesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "vehicles_customers_vehicles",
				Columns:    []*schema.Column{VehiclesColumns[9]},
				RefColumns: []*schema.Column{CustomersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "vehicle_vin",
				Unique:  true,
				Columns: []*schema.Column{VehiclesColumns[7]},
			},
			{
				Name:    "vehicle_license_plate",
				Unique:  false,
				Columns: []*schema.Column{VehiclesColumns[6]},
			},
		},
	}
	// AppointmentServicesColumns holds the columns for the "appointment_services" table.
	AppointmentServicesColumns = []*schema.Column{
		{Name: "appointment_id", Type: field.TypeString},
		{Name: "service_catalog_item_id", Type: field.TypeString},
	}
	// AppointmentServicesTable holds the schema information for the "appointment_services" table.
	AppointmentServicesTable = &schema.Table{
		Name:       "appointment_services",
		Columns:    AppointmentServicesColumns,
		PrimaryKey: []*schema.Column{AppointmentServicesColumns[0], AppointmentServicesColumns[1]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "appointment_services_appointment_id",
				Columns:    []*schema.Column{AppointmentServicesColumns[0]},
				RefColumns: []*schema.Column{AppointmentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "appointment_services_service_catalog_item_id",
				Columns:    []*schema.Column{AppointmentServicesColumns[1]},
				RefColumns: []*schema.Column{ServiceCatalogItemsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AppointmentsTable,
		CustomersTable,
		EmployeesTable,
		IssuesTable,
		NotificationsTable,
		PartsTable,
		ServiceCatalogItemsTable,
		ServiceRecordsTable,
		UsersTable,
		VehiclesTable,
		AppointmentServicesTable,
	}
)

func init() {
	AppointmentsTable.ForeignKeys[0].RefTable = EmployeesTable
	AppointmentsTable.ForeignKeys[1].RefTable = IssuesTable
	AppointmentsTable.ForeignKeys[2].RefTable = VehiclesTable
	IssuesTable.ForeignKeys[0].RefTable = VehiclesTable
	NotificationsTable.ForeignKeys[0].RefTable = UsersTable
	ServiceRecordsTable.ForeignKeys[0].RefTable = AppointmentsTable
	ServiceRecordsTable.ForeignKeys[1].RefTable = VehiclesTable
	VehiclesTable.ForeignKeys[0].RefTable = CustomersTable
	AppointmentServicesTable.ForeignKeys[0].RefTable = AppointmentsTable
	AppointmentServicesTable.ForeignKeys[1].RefTable = ServiceCatalogItemsTable
}
