package memory

import (
	"encoding/json"
	"fmt"
)

// Bucket names used by the durable snapshot drivers. One bucket per
// collection plus the meta bucket carrying the lifecycle markers.
const (
	BucketTeams                = "teams"
	BucketMembers              = "members"
	BucketCustomers            = "customers"
	BucketCategories           = "categories"
	BucketTransactions         = "transactions"
	BucketSalaries             = "salaries"
	BucketBonuses              = "bonuses"
	BucketCommissions          = "commissions"
	BucketCustomerTransactions = "customer_transactions"
	BucketCustomerCounts       = "customer_counts"
	BucketUsers                = "users"
	BucketAuditLogs            = "audit_logs"
	BucketMeta                 = "meta"
)

// LoadReport summarizes what a durable driver found at open time. A bucket
// that failed to decode degrades to an empty collection and is listed here;
// corruption never aborts startup and is never silent.
type LoadReport struct {
	FirstRun        bool
	DegradedBuckets []string
}

// BucketNames lists every bucket in persist order.
func BucketNames() []string {
	return []string{
		BucketTeams,
		BucketMembers,
		BucketCustomers,
		BucketCategories,
		BucketTransactions,
		BucketSalaries,
		BucketBonuses,
		BucketCommissions,
		BucketCustomerTransactions,
		BucketCustomerCounts,
		BucketUsers,
		BucketAuditLogs,
		BucketMeta,
	}
}

// EncodeBucket serializes one bucket of the snapshot to JSON.
func EncodeBucket(s Snapshot, bucket string) ([]byte, error) {
	switch bucket {
	case BucketTeams:
		return json.Marshal(s.Teams)
	case BucketMembers:
		return json.Marshal(s.Members)
	case BucketCustomers:
		return json.Marshal(s.Customers)
	case BucketCategories:
		return json.Marshal(s.Categories)
	case BucketTransactions:
		return json.Marshal(s.Transactions)
	case BucketSalaries:
		return json.Marshal(s.Salaries)
	case BucketBonuses:
		return json.Marshal(s.Bonuses)
	case BucketCommissions:
		return json.Marshal(s.Commissions)
	case BucketCustomerTransactions:
		return json.Marshal(s.CustomerTransactions)
	case BucketCustomerCounts:
		return json.Marshal(s.CustomerCounts)
	case BucketUsers:
		return json.Marshal(s.Users)
	case BucketAuditLogs:
		return json.Marshal(s.AuditLogs)
	case BucketMeta:
		return json.Marshal(s.Meta)
	default:
		return nil, fmt.Errorf("unknown bucket %q", bucket)
	}
}

// DecodeBucket deserializes one bucket payload into the snapshot. Unknown
// buckets are ignored so older blobs with retired buckets still load.
func DecodeBucket(s *Snapshot, bucket string, payload []byte) error {
	switch bucket {
	case BucketTeams:
		return json.Unmarshal(payload, &s.Teams)
	case BucketMembers:
		return json.Unmarshal(payload, &s.Members)
	case BucketCustomers:
		return json.Unmarshal(payload, &s.Customers)
	case BucketCategories:
		return json.Unmarshal(payload, &s.Categories)
	case BucketTransactions:
		return json.Unmarshal(payload, &s.Transactions)
	case BucketSalaries:
		return json.Unmarshal(payload, &s.Salaries)
	case BucketBonuses:
		return json.Unmarshal(payload, &s.Bonuses)
	case BucketCommissions:
		return json.Unmarshal(payload, &s.Commissions)
	case BucketCustomerTransactions:
		return json.Unmarshal(payload, &s.CustomerTransactions)
	case BucketCustomerCounts:
		return json.Unmarshal(payload, &s.CustomerCounts)
	case BucketUsers:
		return json.Unmarshal(payload, &s.Users)
	case BucketAuditLogs:
		return json.Unmarshal(payload, &s.AuditLogs)
	case BucketMeta:
		return json.Unmarshal(payload, &s.Meta)
	default:
		return nil
	}
}
