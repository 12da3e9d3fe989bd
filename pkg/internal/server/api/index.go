package api

import (
	"github.com/gofiber/fiber/v2"
)

func MapAPIs(app *fiber.App, baseURL string, authMiddleware fiber.Handler) {
	api := app.Group(baseURL).Name("API")
	{
		auth := api.Group("/auth").Name("Auth API")
		{
			auth.Post("/register", doRegister)
			auth.Post("/login", doLogin)
		}

		api.Get("/users/me", authMiddleware, getUserinfo)
		api.Get("/users/:accountId", getOthersInfo)

		channels := api.Group("/channels").Use(authMiddleware).Name("Channels API")
		{
			channels.Get("/", listChannel)
			channels.Get("/me", listOwnedChannel)
			channels.Get("/:channelId", getChannel)

			channels.Post("/", createChannel)
			channels.Put("/:channelId", editChannel)
			channels.Post("/:channelId/archive", archiveChannel)
			channels.Delete("/:channelId", deleteChannel)

			channels.Get("/:channelId/members", listChannelMembers)
			channels.Put("/:channelId/members/me", editMyChannelMembership)
			channels.Post("/:channelId/members", addChannelMember)
			channels.Delete("/:channelId/members", removeChannelMember)

			channels.Get("/:channelId/messages", listMessage)
			channels.Post("/:channelId/messages", newMessage)
			channels.Put("/:channelId/messages/:messageId", editMessage)
			channels.Delete("/:channelId/messages/:messageId", deleteMessage)

			channels.Get("/:channelId/messages/pins", listPinnedMessage)
			channels.Post("/:channelId/messages/:messageId/pin", togglePinMessage)
			channels.Post("/:channelId/messages/:messageId/reactions", toggleReaction)

			channels.Get("/:channelId/messages/:messageId/replies", listReply)
			channels.Post("/:channelId/messages/:messageId/replies", newReply)

			channels.Get("/:channelId/tasks", listTask)
			channels.Post("/:channelId/tasks", createTask)
		}

		api.Post("/tasks/:taskId/complete", authMiddleware, completeTask)
		api.Delete("/tasks/:taskId", authMiddleware, deleteTask)

		drafts := api.Group("/drafts").Use(authMiddleware).Name("Drafts API")
		{
			drafts.Get("/", getDraft)
			drafts.Put("/", saveDraft)
			drafts.Delete("/", clearDraft)
		}

		students := api.Group("/students").Use(authMiddleware).Name("Students API")
		{
			students.Get("/", listStudent)
			students.Get("/:studentId", getStudent)
			students.Post("/", createStudent)
			students.Put("/:studentId", editStudent)
			students.Delete("/:studentId", deleteStudent)
		}

		courses := api.Group("/courses").Use(authMiddleware).Name("Courses API")
		{
			courses.Get("/", listCourse)
			courses.Get("/:courseId", getCourse)
			courses.Post("/", createCourse)
			courses.Put("/:courseId", editCourse)
			courses.Delete("/:courseId", deleteCourse)
		}

		classes := api.Group("/classes").Use(authMiddleware).Name("Classes API")
		{
			classes.Get("/", listClass)
			classes.Post("/", createClass)
			classes.Post("/:classId/students", addClassStudent)
			classes.Delete("/:classId/students/:studentId", removeClassStudent)
		}

		enrollments := api.Group("/enrollments").Use(authMiddleware).Name("Enrollments API")
		{
			enrollments.Get("/", listEnrollment)
			enrollments.Post("/", createEnrollment)
			enrollments.Put("/:enrollmentId", editEnrollment)
		}

		payments := api.Group("/payments").Use(authMiddleware).Name("Payments API")
		{
			payments.Get("/", listPayment)
			payments.Get("/overview", getFinancialOverview)
			payments.Post("/", createPayment)
			payments.Delete("/:paymentId", deletePayment)
		}

		notifications := api.Group("/notifications").Use(authMiddleware).Name("Notifications API")
		{
			notifications.Get("/", listNotification)
			notifications.Put("/read", markNotificationRead)
		}
	}
}
