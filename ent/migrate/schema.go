// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// APIKeysColumns holds the columns for the "api_keys" table.
	APIKeysColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "secret_ciphertext", Type: field.TypeString},
		{Name: "iv", Type: field.TypeString},
		{Name: "auth_tag", Type: field.TypeString},
		{Name: "plan_tag", Type: field.TypeString, Size: 10},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "revealed", Type: field.TypeBool, Default: false},
		{Name: "reveal_count", Type: field.TypeInt, Default: 0},
		{Name: "revealed_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_used_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "owner_id", Type: field.TypeInt},
	}
	// APIKeysTable holds the schema information for the "api_keys" table.
	APIKeysTable = &schema.Table{
		Name:       "api_keys",
		Columns:    APIKeysColumns,
		PrimaryKey: []*schema.Column{APIKeysColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "api_keys_users_api_keys",
				Columns:    []*schema.Column{APIKeysColumns[11]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "apikey_owner_id",
				Unique:  false,
				Columns: []*schema.Column{APIKeysColumns[11]},
			},
			{
				Name:    "apikey_owner_id_is_active",
				Unique:  false,
				Columns: []*schema.Column{APIKeysColumns[11], APIKeysColumns[5]},
			},
			{
				Name:    "apikey_created_at",
				Unique:  false,
				Columns: []*schema.Column{APIKeysColumns[10]},
			},
		},
	}
	// HealthLogsColumns holds the columns for the "health_logs" table.
	HealthLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "log_date", Type: field.TypeTime, Unique: true},
		{Name: "total_seconds", Type: field.TypeInt, Default: 0},
		{Name: "total_uptime_seconds", Type: field.TypeInt, Default: 0},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"healthy", "degraded", "error"}, Default: "healthy"},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// HealthLogsTable holds the schema information for the "health_logs" table.
	HealthLogsTable = &schema.Table{
		Name:       "health_logs",
		Columns:    HealthLogsColumns,
		PrimaryKey: []*schema.Column{HealthLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "healthlog_log_date",
				Unique:  true,
				Columns: []*schema.Column{HealthLogsColumns[1]},
			},
		},
	}
	// PlansColumns holds the columns for the "plans" table.
	PlansColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "code", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "price", Type: field.TypeInt},
		{Name: "billing_period", Type: field.TypeString, Default: "month"},
		{Name: "stripe_price_id", Type: field.TypeString, Nullable: true},
		{Name: "api_key_limit", Type: field.TypeInt},
		{Name: "request_limit", Type: field.TypeInt},
		{Name: "is_recommended", Type: field.TypeBool, Default: false},
		{Name: "color_from", Type: field.TypeString, Nullable: true},
		{Name: "color_to", Type: field.TypeString, Nullable: true},
	}
	// PlansTable holds the schema information for the "plans" table.
	PlansTable = &schema.Table{
		Name:       "plans",
		Columns:    PlansColumns,
		PrimaryKey: []*schema.Column{PlansColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "plan_code",
				Unique:  true,
				Columns: []*schema.Column{PlansColumns[1]},
			},
		},
	}
	// PlanFeaturesColumns holds the columns for the "plan_features" table.
	PlanFeaturesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "feature", Type: field.TypeString},
		{Name: "feature_order", Type: field.TypeInt, Default: 0},
		{Name: "plan_id", Type: field.TypeInt},
	}
	// PlanFeaturesTable holds the schema information for the "plan_features" table.
	PlanFeaturesTable = &schema.Table{
		Name:       "plan_features",
		Columns:    PlanFeaturesColumns,
		PrimaryKey: []*schema.Column{PlanFeaturesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "plan_features_plans_features",
				Columns:    []*schema.Column{PlanFeaturesColumns[3]},
				RefColumns: []*schema.Column{PlansColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "planfeature_plan_id_feature_order",
				Unique:  false,
				Columns: []*schema.Column{PlanFeaturesColumns[3], PlanFeaturesColumns[2]},
			},
		},
	}
	// SubscriptionsColumns holds the columns for the "subscriptions" table.
	SubscriptionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "tier", Type: field.TypeEnum, Enums: []string{"free", "pro", "enterprise"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "canceled", "past_due", "unpaid"}, Default: "active"},
		{Name: "stripe_subscription_id", Type: field.TypeString, Unique: true},
		{Name: "current_period_start", Type: field.TypeTime, Nullable: true},
		{Name: "current_period_end", Type: field.TypeTime, Nullable: true},
		{Name: "cancel_at_period_end", Type: field.TypeBool, Default: false},
		{Name: "canceled_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeInt},
	}
	// SubscriptionsTable holds the schema information for the "subscriptions" table.
	SubscriptionsTable = &schema.Table{
		Name:       "subscriptions",
		Columns:    SubscriptionsColumns,
		PrimaryKey: []*schema.Column{SubscriptionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "subscriptions_users_subscriptions",
				Columns:    []*schema.Column{SubscriptionsColumns[9]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "subscription_user_id",
				Unique:  false,
				Columns: []*schema.Column{SubscriptionsColumns[9]},
			},
			{
				Name:    "subscription_stripe_subscription_id",
				Unique:  true,
				Columns: []*schema.Column{SubscriptionsColumns[3]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "password_hash", Type: field.TypeString, Nullable: true},
		{Name: "name", Type: field.TypeString},
		{Name: "plan_tier", Type: field.TypeEnum, Enums: []string{"free", "pro", "enterprise"}, Default: "free"},
		{Name: "oauth_provider", Type: field.TypeString, Nullable: true},
		{Name: "oauth_id", Type: field.TypeString, Nullable: true},
		{Name: "stripe_customer_id", Type: field.TypeString, Nullable: true},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
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
				Columns: []*schema.Column{UsersColumns[1]},
			},
			{
				Name:    "user_plan_tier",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		APIKeysTable,
		HealthLogsTable,
		PlansTable,
		PlanFeaturesTable,
		SubscriptionsTable,
		UsersTable,
	}
)

func init() {
	APIKeysTable.ForeignKeys[0].RefTable = UsersTable
	PlanFeaturesTable.ForeignKeys[0].RefTable = PlansTable
	SubscriptionsTable.ForeignKeys[0].RefTable = UsersTable
}
