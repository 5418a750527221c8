package converter

import (
	"wasset-admin/src/internal/entity"
	"wasset-admin/src/internal/model"
)

func UserToResponse(user *entity.User) *model.UserResponse {
	displayName := user.DisplayName
	if displayName == "" {
		displayName = user.FullName
	}
	if displayName == "" {
		displayName = user.Username
	}
	if displayName == "" {
		displayName = "غير محدد"
	}

	userType := user.UserType
	if userType == "" {
		userType = "buyer"
	}

	verification := user.VerificationStatus
	if verification == "" {
		verification = "pending"
	}

	uid := user.UID
	if uid == "" {
		uid = user.ID
	}

	return &model.UserResponse{
		ID:                 user.ID,
		UID:                uid,
		DisplayName:        displayName,
		Email:              user.Email,
		Phone:              user.Phone,
		UserType:           userType,
		VerificationStatus: verification,
		IsBlocked:          user.IsBlocked,
		TransactionCount:   user.TransactionCount,
		TotalSpent:         user.TotalSpent,
		TotalEarned:        user.TotalEarned,
		RegistrationDate:   user.CreatedAt,
		LastLoginDate:      user.LastLoginDate,
		CreatedAt:          user.CreatedAt,
		UpdatedAt:          user.UpdatedAt,
	}
}

func UsersToResponse(users []entity.User) []*model.UserResponse {
	responses := make([]*model.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, UserToResponse(&users[i]))
	}
	return responses
}
