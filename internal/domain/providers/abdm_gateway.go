package providers

import (
	"context"

	"github.com/migranthealth/careconnect/internal/domain/entities"
)

// ABDMGateway is the national health-exchange boundary. Each call resolves
// exactly once; implementations must honour ctx cancellation.
type ABDMGateway interface {
	// GenerateQR builds the ABHA card QR payload for an ABHA id
	GenerateQR(ctx context.Context, abhaID string) (*entities.ABHAQRCode, error)

	// SubmitAppointment registers a booking with the facility
	SubmitAppointment(ctx context.Context, appointment *entities.Appointment) error

	// ShareRecords shares records with a facility under a consent artefact
	ShareRecords(ctx context.Context, req *entities.ShareRequest) (*entities.ShareReceipt, error)
}
