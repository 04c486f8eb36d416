package http

import (
	"strings"

	"eats/internal/core/application/usecases/queries"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const identityKey = "identity"

// access says who may call an operation: everyone, any signed-in user, or
// signed-in users holding one of roles.
type access struct {
	public bool
	roles  []user.Role
}

var (
	public  = access{public: true}
	anyone  = access{}
	owners  = access{roles: []user.Role{user.Owner}}
	clients = access{roles: []user.Role{user.Client}}
	drivers = access{roles: []user.Role{user.Delivery}}
)

// operationPolicies is the authorization table. Every route is registered
// under one of these names; per-record checks stay in the handlers.
var operationPolicies = map[string]access{
	"createAccount": public,
	"login":         public,
	"verifyEmail":   public,
	"me":            anyone,
	"userProfile":   anyone,
	"editProfile":   anyone,
	"deleteAccount": anyone,

	"restaurants":       public,
	"searchRestaurants": public,
	"restaurant":        public,
	"restaurantQRCode":  public,
	"categories":        public,
	"category":          public,
	"createRestaurant":  owners,
	"editRestaurant":    owners,
	"deleteRestaurant":  owners,
	"createDish":        owners,
	"editDish":          owners,
	"deleteDish":        owners,

	"createPayment": owners,
	"getPayments":   owners,

	"createOrder": clients,
	"getOrders":   anyone,
	"getOrder":    anyone,
	"editOrder":   anyone,
	"takeOrder":   drivers,

	"pendingOrders": owners,
	"cookedOrders":  drivers,
	"orderUpdates":  anyone,

	"upload": anyone,
}

func (a access) allows(role user.Role) bool {
	if len(a.roles) == 0 {
		return true
	}
	for _, r := range a.roles {
		if r == role {
			return true
		}
	}
	return false
}

// authorize resolves the caller and checks the policy of op before dispatch.
// Operations missing from the table are denied.
func (s *Server) authorize(op string) echo.MiddlewareFunc {
	policy, known := operationPolicies[op]
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !known {
				return errs.NewForbiddenError("operation " + op + " has no access policy")
			}
			if policy.public {
				if who, err := s.resolve(c); err == nil {
					c.Set(identityKey, who)
				}
				return next(c)
			}

			who, err := s.resolve(c)
			if err != nil {
				return err
			}
			if !policy.allows(who.Role) {
				return errs.NewForbiddenError("you are not allowed to " + op)
			}
			c.Set(identityKey, who)
			return next(c)
		}
	}
}

// resolve verifies the session token and reloads the account so that deleted
// users and changed roles take effect immediately.
func (s *Server) resolve(c echo.Context) (user.Identity, error) {
	token := bearerToken(c)
	if token == "" {
		return user.Identity{}, errs.NewForbiddenError("authentication required")
	}

	claimed, err := s.tokens.Verify(token)
	if err != nil {
		return user.Identity{}, err
	}

	query, err := queries.NewGetUserProfileQuery(claimed.ID)
	if err != nil {
		return user.Identity{}, errs.NewForbiddenErrorWithCause("authentication required", err)
	}
	profile, err := s.h.UserProfile.Handle(c.Request().Context(), query)
	if err != nil {
		return user.Identity{}, errs.NewForbiddenErrorWithCause("authentication required", err)
	}
	return user.Identity{ID: profile.ID, Role: profile.Role}, nil
}

// bearerToken reads the Authorization header, falling back to the
// access_token query parameter for EventSource clients that cannot set headers.
func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if scheme, token, ok := strings.Cut(header, " "); ok && strings.EqualFold(scheme, "Bearer") {
		return strings.TrimSpace(token)
	}
	return c.QueryParam("access_token")
}

func identityOf(c echo.Context) user.Identity {
	who, _ := c.Get(identityKey).(user.Identity)
	return who
}
