package doctors

import (
	"context"
	"fmt"
	"time"

	"doctorsportal-service/internal/app/contracts"
	"doctorsportal-service/internal/app/models"
	"doctorsportal-service/internal/pkg/constvars"
	"doctorsportal-service/internal/pkg/dto/requests"
	"doctorsportal-service/internal/pkg/dto/responses"
	"doctorsportal-service/internal/pkg/exceptions"
	"doctorsportal-service/internal/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type doctorUsecase struct {
	DoctorRepository contracts.DoctorRepository
	ObjectStorage    contracts.ObjectStorage
	Log              *zap.Logger
}

func NewDoctorUsecase(
	doctorRepository contracts.DoctorRepository,
	objectStorage contracts.ObjectStorage,
	log *zap.Logger,
) contracts.DoctorUsecase {
	return &doctorUsecase{
		DoctorRepository: doctorRepository,
		ObjectStorage:    objectStorage,
		Log:              log,
	}
}

// CreateDoctor uploads the portrait to object storage first and stores only
// the resulting URL on the document.
func (uc *doctorUsecase) CreateDoctor(ctx context.Context, request *requests.CreateDoctor) (*responses.CreateDoctor, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	imageURL := ""
	if request.Image != "" {
		data, ext, err := utils.DecodeBase64Image(request.Image)
		if err != nil {
			return nil, exceptions.ErrImageValidation(err)
		}
		if err := utils.ValidateImageFormat(ext, constvars.ImageAllowedDoctorFormats); err != nil {
			return nil, exceptions.ErrImageValidation(err)
		}

		objectName := fmt.Sprintf("doctors/%s.%s", uuid.NewString(), ext)
		contentType := "image/" + ext
		if ext == "jpg" {
			contentType = "image/jpeg"
		}
		imageURL, err = uc.ObjectStorage.Upload(ctx, objectName, data, contentType)
		if err != nil {
			return nil, err
		}
	}

	doctor := &models.Doctor{
		Name:      request.Name,
		Email:     request.Email,
		Specialty: request.Specialty,
		Image:     imageURL,
		CreatedAt: time.Now(),
	}
	doctorID, err := uc.DoctorRepository.CreateDoctor(ctx, doctor)
	if err != nil {
		return nil, err
	}

	return &responses.CreateDoctor{
		DoctorID: doctorID,
		Name:     doctor.Name,
		Image:    doctor.Image,
	}, nil
}

func (uc *doctorUsecase) GetAllDoctors(ctx context.Context) ([]models.Doctor, error) {
	return uc.DoctorRepository.FindAll(ctx)
}

func (uc *doctorUsecase) DeleteDoctor(ctx context.Context, doctorID string) error {
	return uc.DoctorRepository.DeleteByID(ctx, doctorID)
}
