package entity

import "time"

type Admin struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	DisplayName  string    `bson:"displayName,omitempty" json:"displayName"`
	Role         string    `bson:"role,omitempty" json:"role"`
	IsActive     bool      `bson:"isActive" json:"isActive"`
	CreatedAt    time.Time `bson:"createdAt,omitempty" json:"createdAt"`
}

// AuditLog records one admin mutation in the logs collection.
type AuditLog struct {
	ID         string    `bson:"_id,omitempty" json:"id"`
	AdminID    string    `bson:"adminId" json:"adminId"`
	Action     string    `bson:"action" json:"action"`
	Resource   string    `bson:"resource" json:"resource"`
	ResourceID string    `bson:"resourceId,omitempty" json:"resourceId"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
}
