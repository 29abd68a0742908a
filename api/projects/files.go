package projects

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/structech/survey-api/api/middleware"
	"github.com/structech/survey-api/api/types"
	filesService "github.com/structech/survey-api/internal/services/files"
	"github.com/structech/survey-api/pkg/config"
	apperrors "github.com/structech/survey-api/pkg/errors"
)

// ListFiles returns a project's uploaded files
// @Summary      List project files
// @Tags         files
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "Project ID"
// @Success      200 {object} object{files=[]models.ProjectFile} "Files"
// @Failure      403 {object} types.ErrorResponse "Not a member of this project"
// @Router       /api/v1/projects/{id}/files [get]
func ListFiles(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}
		if !requireProjectAccess(c, deps, id) {
			return
		}

		list, err := deps.FileService.ListFiles(c.Request.Context(), id)
		if err != nil {
			types.SendInternalError(c, "Failed to list files")
			return
		}
		types.SendSuccess(c, gin.H{"files": list})
	}
}

// UploadFile stores a new project file
// @Summary      Upload project file
// @Description  Accepts images, PDFs, plain text, CSV and Excel workbooks up to the configured size limit
// @Tags         files
// @Security     BearerAuth
// @Accept       multipart/form-data
// @Produce      json
// @Param        id path int true "Project ID"
// @Param        file formData file true "File payload"
// @Param        title formData string false "Display title (defaults to the file name)"
// @Success      201 {object} models.ProjectFile "Stored file"
// @Failure      400 {object} types.ErrorResponse "Missing or empty file"
// @Failure      413 {object} types.ErrorResponse "File too large"
// @Failure      415 {object} types.ErrorResponse "Unsupported file type"
// @Router       /api/v1/projects/{id}/files [post]
func UploadFile(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}
		if !requireProjectAccess(c, deps, id) {
			return
		}

		header, err := c.FormFile("file")
		if err != nil {
			types.SendBadRequest(c, "file is required")
			return
		}
		if max := config.GetInt64("storage.max_file_size"); max > 0 && header.Size > max {
			c.JSON(http.StatusRequestEntityTooLarge, types.ErrorResponse{Message: "File exceeds the upload size limit"})
			return
		}
		mimeType := header.Header.Get("Content-Type")
		if !filesService.MimeAllowed(mimeType) {
			c.JSON(http.StatusUnsupportedMediaType, types.ErrorResponse{Message: "Unsupported file type"})
			return
		}

		src, err := header.Open()
		if err != nil {
			types.SendInternalError(c, "Failed to read upload")
			return
		}
		defer src.Close()

		var uploadedBy uint
		if claims := middleware.Claims(c); claims != nil {
			uploadedBy = claims.UserID
		}

		file, err := deps.FileService.Upload(c.Request.Context(), filesService.Upload{
			ProjectID:    id,
			UploadedByID: uploadedBy,
			Title:        c.PostForm("title"),
			OriginalName: header.Filename,
			MimeType:     mimeType,
			Body:         src,
		})
		if err != nil {
			switch {
			case errors.Is(err, filesService.ErrUnsupportedType):
				c.JSON(http.StatusUnsupportedMediaType, types.ErrorResponse{Message: "Unsupported file type"})
			case errors.Is(err, filesService.ErrEmptyUpload):
				types.SendBadRequest(c, "Uploaded file is empty")
			default:
				var appErr *apperrors.AppError
				if errors.As(err, &appErr) {
					types.SendAppError(c, appErr)
					return
				}
				types.SendInternalError(c, "Failed to store file")
			}
			return
		}
		types.SendCreated(c, file)
	}
}

// DownloadFile streams a stored file back to the caller
// @Summary      Download project file
// @Tags         files
// @Security     BearerAuth
// @Produce      octet-stream
// @Param        id path int true "Project ID"
// @Param        fileId path int true "File ID"
// @Success      200 {file} binary "File payload"
// @Failure      404 {object} types.ErrorResponse "File not found"
// @Failure      410 {object} types.ErrorResponse "File payload missing from storage"
// @Router       /api/v1/projects/{id}/files/{fileId} [get]
func DownloadFile(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		projectID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}
		if !requireProjectAccess(c, deps, projectID) {
			return
		}
		fileID, ok := types.ParseUintParam(c, "fileId")
		if !ok {
			return
		}

		file, reader, err := deps.FileService.Download(c.Request.Context(), fileID)
		if err != nil {
			switch {
			case errors.Is(err, filesService.ErrFileNotFound):
				types.SendNotFound(c, "File not found")
			case errors.Is(err, filesService.ErrFileGone):
				types.SendGone(c, "File payload is missing from storage")
			default:
				types.SendInternalError(c, "Failed to open file")
			}
			return
		}
		defer reader.Close()

		if file.ProjectID != projectID {
			types.SendNotFound(c, "File not found")
			return
		}

		c.Header("Content-Disposition", `attachment; filename="`+file.OriginalName+`"`)
		c.Header("Content-Length", strconv.FormatInt(file.Size, 10))
		c.DataFromReader(http.StatusOK, file.Size, file.MimeType, reader, nil)
	}
}

// DeleteFile removes a stored file
// @Summary      Delete project file
// @Tags         files
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "Project ID"
// @Param        fileId path int true "File ID"
// @Success      200 {object} map[string]string "Deleted"
// @Failure      404 {object} types.ErrorResponse "File not found"
// @Router       /api/v1/projects/{id}/files/{fileId} [delete]
func DeleteFile(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		projectID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}
		if !requireProjectAccess(c, deps, projectID) {
			return
		}
		fileID, ok := types.ParseUintParam(c, "fileId")
		if !ok {
			return
		}

		if err := deps.FileService.DeleteFile(c.Request.Context(), projectID, fileID); err != nil {
			if errors.Is(err, filesService.ErrFileNotFound) {
				types.SendNotFound(c, "File not found")
			} else {
				types.SendInternalError(c, "Failed to delete file")
			}
			return
		}
		types.SendSuccess(c, gin.H{"message": "File deleted"})
	}
}
