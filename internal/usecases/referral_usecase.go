package usecases

import (
	"context"

	"github.com/InusahIbraheem/solid-life-web/internal/domain/entities"
	"github.com/InusahIbraheem/solid-life-web/internal/domain/repositories"
	"github.com/google/uuid"
)

// ReferralUsecase exposes the referral network views: per-level listings and
// the bounded-depth genealogy tree.
type ReferralUsecase struct {
	referrals repositories.ReferralRepository
	users     repositories.UserRepository

	treeDepth int
}

// NewReferralUsecase creates a new referral usecase
func NewReferralUsecase(
	referrals repositories.ReferralRepository,
	users repositories.UserRepository,
	treeDepth int,
) *ReferralUsecase {
	if treeDepth <= 0 {
		treeDepth = 3
	}
	return &ReferralUsecase{referrals: referrals, users: users, treeDepth: treeDepth}
}

// ListByLevel returns a member's referrals at the given level (0 = all).
func (u *ReferralUsecase) ListByLevel(ctx context.Context, referrerID uuid.UUID, level, limit, offset int) ([]*entities.Referral, int64, error) {
	return u.referrals.GetByReferrer(ctx, referrerID, level, limit, offset)
}

// CountDownline returns the total size of a member's recorded downline.
func (u *ReferralUsecase) CountDownline(ctx context.Context, referrerID uuid.UUID) (int64, error) {
	return u.referrals.CountByReferrer(ctx, referrerID)
}

// GetTree builds the genealogy view rooted at the member, following direct
// referral edges down to the configured depth. Depth is bounded so one request
// can never traverse the whole network.
func (u *ReferralUsecase) GetTree(ctx context.Context, rootID uuid.UUID) (*entities.ReferralTreeNode, error) {
	root, err := u.users.GetByID(ctx, rootID)
	if err != nil {
		return nil, err
	}
	node := treeNode(root)
	if err := u.fillChildren(ctx, node, u.treeDepth); err != nil {
		return nil, err
	}
	return node, nil
}

func (u *ReferralUsecase) fillChildren(ctx context.Context, node *entities.ReferralTreeNode, depth int) error {
	if depth <= 0 {
		return nil
	}
	edges, err := u.referrals.GetDirectReferrals(ctx, node.UserID)
	if err != nil {
		return err
	}
	for _, edge := range edges {
		child := edge.Referred
		if child == nil {
			child, err = u.users.GetByID(ctx, edge.ReferredID)
			if err != nil {
				return err
			}
		}
		childNode := treeNode(child)
		if err := u.fillChildren(ctx, childNode, depth-1); err != nil {
			return err
		}
		node.Children = append(node.Children, childNode)
	}
	return nil
}

func treeNode(user *entities.User) *entities.ReferralTreeNode {
	return &entities.ReferralTreeNode{
		UserID:       user.ID,
		Name:         user.FirstName + " " + user.LastName,
		ReferralCode: user.ReferralCode,
		Rank:         user.Rank,
		PointVolume:  user.PointVolume,
	}
}
